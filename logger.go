package resolve

// Fields carries structured context for a log line.
type Fields map[string]any

// Logger receives the facade's lifecycle events: construction and
// purges. Per-lookup events never go through the Logger; those are
// Hooks, cheap enough for hot paths. Adapters for zap, logrus, slog and
// apex live under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. The default when Options.Logger is nil.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
