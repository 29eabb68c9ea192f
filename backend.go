package resolve

// Op identifies which filesystem operation a backend serves.
type Op string

const (
	OpStat     Op = "stat"
	OpLstat    Op = "lstat"
	OpReadDir  Op = "readdir"
	OpReadFile Op = "readfile"
	OpReadJSON Op = "readjson"
	OpReadlink Op = "readlink"
)

// providerFunc is the asynchronous form of one underlying filesystem
// call: it arranges for callback to be invoked with the outcome and
// returns without waiting.
type providerFunc[V any] func(path string, callback func(V, error))

// providerSyncFunc is the synchronous form of the same call.
type providerSyncFunc[V any] func(path string) (V, error)

// backend implements the caching or merging policy for one operation.
//
// provide delivers through callback; a cached outcome is delivered from
// another goroutine, never re-entrantly before provide returns. bypass
// skips cache, merging and storage and goes straight to the provider.
// provideSync blocks; it shares the cache with provide and resolves any
// continuations left behind by in-flight asynchronous calls.
type backend[V any] interface {
	provide(path string, callback func(V, error), bypass bool)
	provideSync(path string, bypass bool) (V, error)
	purge(paths ...string)
	purgeParent(paths ...string)
	stats() CacheStats
}

// backendContext carries the per-operation collaborators a backend
// reports through.
type backendContext struct {
	op    Op
	hooks Hooks
}

// newBackend selects the strategy for one operation: a bounded outcome
// cache when capacity > 0, pure in-flight merging otherwise.
func newBackend[V any](capacity int, provider providerFunc[V], providerSync providerSyncFunc[V], bctx backendContext) backend[V] {
	if capacity > 0 {
		return newCacheBackend(capacity, provider, providerSync, bctx)
	}
	return newMergeBackend(provider, providerSync, bctx)
}

// async lifts a synchronous provider call into the callback form the
// backends consume.
func async[V any](fn providerSyncFunc[V]) providerFunc[V] {
	return func(path string, callback func(V, error)) {
		go func() {
			v, err := fn(path)
			callback(v, err)
		}()
	}
}

// flight is one outstanding provider call and the continuations waiting
// on it, in registration order.
type flight[V any] struct {
	callbacks []func(V, error)
}

// runCallbacks delivers one outcome to every continuation in order. A
// panicking continuation does not stop delivery to the rest; the first
// panic value is re-raised once all have run.
func runCallbacks[V any](callbacks []func(V, error), v V, err error) {
	if len(callbacks) == 1 {
		callbacks[0](v, err)
		return
	}
	var (
		panicked bool
		reason   any
	)
	for _, callback := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil && !panicked {
					panicked, reason = true, r
				}
			}()
			callback(v, err)
		}()
	}
	if panicked {
		panic(reason)
	}
}

// dirname trims the final path segment. Both separator styles are
// honored so Windows-shaped keys invalidate correctly. A path without a
// separator maps to the empty string.
func dirname(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if c := path[i]; c == '/' || c == '\\' {
			return path[:i]
		}
	}
	return ""
}

// parentsOf maps each path to its parent directory, deduplicated,
// preserving first-seen order.
func parentsOf(paths []string) []string {
	parents := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		d := dirname(p)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		parents = append(parents, d)
	}
	return parents
}
