package resolve

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking.
// The backends call them on hot paths.
type Hooks interface {
	// A lookup was served from the outcome cache.
	CacheHit(op Op, path string)

	// A lookup found neither a cached outcome nor an in-flight call and
	// started a provider invocation.
	CacheMiss(op Op, path string)

	// A continuation joined a call already in flight for the same path.
	Merged(op Op, path string)

	// A synchronous call took over an in-flight asynchronous call and
	// resolved its pending continuations.
	Adopted(op Op, path string, waiters int)

	// An entry was displaced by capacity pressure (not by Purge).
	Evicted(op Op, path string)

	// removed entries were invalidated by a purge.
	Purged(op Op, removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CacheHit(Op, string)     {}
func (NopHooks) CacheMiss(Op, string)    {}
func (NopHooks) Merged(Op, string)       {}
func (NopHooks) Adopted(Op, string, int) {}
func (NopHooks) Evicted(Op, string)      {}
func (NopHooks) Purged(Op, int)          {}
