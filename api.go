package resolve

import (
	"io/fs"

	pr "github.com/jomi-se/enhanced-resolve/provider"
)

// FileSystem is the cached filesystem surface a resolution pipeline
// walks. Every operation comes in an asynchronous form, delivering
// through a callback, and a synchronous form returning in place. Both
// forms of one operation share a single outcome cache, so either can
// reuse results the other produced.
type FileSystem interface {
	Stat(path string, callback func(fs.FileInfo, error), opts ...CallOption)
	StatSync(path string, opts ...CallOption) (fs.FileInfo, error)

	// Lstat fails with errors.ErrUnsupported unless the underlying
	// provider implements provider.Lstater.
	Lstat(path string, callback func(fs.FileInfo, error), opts ...CallOption)
	LstatSync(path string, opts ...CallOption) (fs.FileInfo, error)

	ReadDir(path string, callback func([]fs.DirEntry, error), opts ...CallOption)
	ReadDirSync(path string, opts ...CallOption) ([]fs.DirEntry, error)

	ReadFile(path string, callback func([]byte, error), opts ...CallOption)
	ReadFileSync(path string, opts ...CallOption) ([]byte, error)

	// ReadJSON uses the provider's native implementation when it has
	// one and is otherwise synthesized from the cached ReadFile.
	ReadJSON(path string, callback func(any, error), opts ...CallOption)
	ReadJSONSync(path string, opts ...CallOption) (any, error)

	Readlink(path string, callback func(string, error), opts ...CallOption)
	ReadlinkSync(path string, opts ...CallOption) (string, error)

	// Purge invalidates the named paths, or every cached outcome when
	// called with no arguments. Directory listings are invalidated
	// through each path's parent.
	Purge(paths ...string)

	SupportsLstat() bool

	// Stats snapshots per-operation cache counters.
	Stats() map[Op]CacheStats

	// Provider returns the underlying filesystem, for operations the
	// cached surface does not cover.
	Provider() pr.Provider
}

// Options tune the cached filesystem.
// Only Provider is required; others have sensible defaults.
type Options struct {
	// Required
	Provider pr.Provider

	// Capacity bounds each operation's outcome cache (entry count).
	// <= 0 disables caching; concurrent duplicate calls are still
	// merged. There is no time-based expiry: entries live until purged
	// or displaced.
	Capacity int

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used

	// ParseJSON parses file content for the synthesized ReadJSON. If
	// nil, encoding/json is used.
	ParseJSON func(data []byte) (any, error)
}

func New(opts Options) (FileSystem, error) {
	return newCachedFS(opts)
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	uncached bool
}

// Uncached sends the call straight to the underlying provider: no cache
// lookup, no merging, and the result is not stored.
func Uncached() CallOption {
	return func(o *callOptions) { o.uncached = true }
}

func applyCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
