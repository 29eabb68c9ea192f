package resolve

import (
	"sync"

	"github.com/jomi-se/enhanced-resolve/internal/lru"
)

// outcome is one finished provider call, success or failure. Errors are
// cached like values and replayed until the next purge.
type outcome[V any] struct {
	v   V
	err error
}

// cacheBackend memoizes outcomes in a bounded LRU shared by the sync and
// async paths, on top of the same in-flight merging as mergeBackend.
//
// Concurrency model: cache and inflight are only touched under mu;
// provider invocations and continuation delivery happen outside it. A
// synchronous call that finds a flight registered for its path removes
// it and resolves the queued continuations with its own result. The
// orphaned asynchronous invocation detects the theft when it completes,
// by its flight no longer being registered, and discards its result.
type cacheBackend[V any] struct {
	op    Op
	hooks Hooks

	provider     providerFunc[V]
	providerSync providerSyncFunc[V]

	mu       sync.Mutex
	cache    *lru.Cache[outcome[V]]
	inflight map[string]*flight[V]
}

var _ backend[string] = (*cacheBackend[string])(nil)

func newCacheBackend[V any](capacity int, provider providerFunc[V], providerSync providerSyncFunc[V], bctx backendContext) *cacheBackend[V] {
	return &cacheBackend[V]{
		op:           bctx.op,
		hooks:        bctx.hooks,
		provider:     provider,
		providerSync: providerSync,
		cache:        lru.New[outcome[V]](capacity),
		inflight:     make(map[string]*flight[V]),
	}
}

func (b *cacheBackend[V]) provide(path string, callback func(V, error), bypass bool) {
	if path == "" {
		var zero V
		callback(zero, ErrInvalidPath)
		return
	}
	if bypass {
		b.provider(path, callback)
		return
	}

	b.mu.Lock()
	if out, ok := b.cache.Get(path); ok {
		b.mu.Unlock()
		b.hooks.CacheHit(b.op, path)
		// Deliver from another goroutine so a hit keeps the async
		// contract: callback never runs before provide returns.
		go callback(out.v, out.err)
		return
	}
	if f, ok := b.inflight[path]; ok {
		f.callbacks = append(f.callbacks, callback)
		b.mu.Unlock()
		b.hooks.Merged(b.op, path)
		return
	}
	f := &flight[V]{callbacks: []func(V, error){callback}}
	b.inflight[path] = f
	b.mu.Unlock()

	b.hooks.CacheMiss(b.op, path)
	b.provider(path, func(v V, err error) {
		b.complete(path, f, v, err)
	})
}

// complete finishes an asynchronous flight: store the outcome and
// deliver to everyone who queued on it. If the flight is no longer the
// registered one, a sync call already resolved its continuations and
// this result is dropped.
func (b *cacheBackend[V]) complete(path string, f *flight[V], v V, err error) {
	b.mu.Lock()
	if b.inflight[path] != f {
		b.mu.Unlock()
		return
	}
	delete(b.inflight, path)
	evictedKey, evicted := b.cache.Add(path, outcome[V]{v: v, err: err})
	callbacks := f.callbacks
	b.mu.Unlock()

	if evicted {
		b.hooks.Evicted(b.op, evictedKey)
	}
	runCallbacks(callbacks, v, err)
}

func (b *cacheBackend[V]) provideSync(path string, bypass bool) (V, error) {
	if path == "" {
		var zero V
		return zero, ErrInvalidPath
	}
	if bypass {
		return b.providerSync(path)
	}

	b.mu.Lock()
	if out, ok := b.cache.Get(path); ok {
		b.mu.Unlock()
		b.hooks.CacheHit(b.op, path)
		return out.v, out.err
	}
	// Adopt the continuations of any in-flight asynchronous call; this
	// sync invocation resolves them instead of the one they queued on.
	var adopted []func(V, error)
	if f, ok := b.inflight[path]; ok {
		adopted = f.callbacks
		delete(b.inflight, path)
	}
	b.mu.Unlock()

	b.hooks.CacheMiss(b.op, path)
	v, err := b.providerSync(path)

	b.mu.Lock()
	evictedKey, evicted := b.cache.Add(path, outcome[V]{v: v, err: err})
	b.mu.Unlock()

	if evicted {
		b.hooks.Evicted(b.op, evictedKey)
	}
	if len(adopted) > 0 {
		b.hooks.Adopted(b.op, path, len(adopted))
		runCallbacks(adopted, v, err)
	}
	return v, err
}

// purge drops the named entries, or everything when called with no
// arguments. In-flight calls are unaffected; their results will still be
// stored when they complete.
func (b *cacheBackend[V]) purge(paths ...string) {
	b.mu.Lock()
	var removed int
	if len(paths) == 0 {
		removed = b.cache.Len()
		b.cache.Clear()
	} else {
		for _, p := range paths {
			if b.cache.Remove(p) {
				removed++
			}
		}
	}
	b.mu.Unlock()

	if removed > 0 {
		b.hooks.Purged(b.op, removed)
	}
}

// purgeParent invalidates the entries keyed by each path's parent
// directory. A listing depends on its children's existence, so a changed
// child invalidates the cached listing of its parent, not of itself.
func (b *cacheBackend[V]) purgeParent(paths ...string) {
	if len(paths) == 0 {
		b.purge()
		return
	}
	b.purge(parentsOf(paths)...)
}

func (b *cacheBackend[V]) stats() CacheStats {
	s := b.cache.Stats()
	return CacheStats{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		Entries:   b.cache.Len(),
		Capacity:  b.cache.Capacity(),
	}
}
