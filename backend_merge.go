package resolve

import (
	"sync"
)

// mergeBackend coalesces concurrent asynchronous calls for the same path
// into one provider invocation and retains nothing afterwards. Used when
// the configured capacity disables caching.
type mergeBackend[V any] struct {
	op    Op
	hooks Hooks

	provider     providerFunc[V]
	providerSync providerSyncFunc[V]

	mu       sync.Mutex
	inflight map[string]*flight[V]
}

var _ backend[string] = (*mergeBackend[string])(nil)

func newMergeBackend[V any](provider providerFunc[V], providerSync providerSyncFunc[V], bctx backendContext) *mergeBackend[V] {
	return &mergeBackend[V]{
		op:           bctx.op,
		hooks:        bctx.hooks,
		provider:     provider,
		providerSync: providerSync,
		inflight:     make(map[string]*flight[V]),
	}
}

func (b *mergeBackend[V]) provide(path string, callback func(V, error), bypass bool) {
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
	if f, ok := b.inflight[path]; ok {
		f.callbacks = append(f.callbacks, callback)
		b.mu.Unlock()
		b.hooks.Merged(b.op, path)
		return
	}
	f := &flight[V]{callbacks: []func(V, error){callback}}
	b.inflight[path] = f
	b.mu.Unlock()

	b.provider(path, func(v V, err error) {
		b.mu.Lock()
		delete(b.inflight, path)
		callbacks := f.callbacks
		b.mu.Unlock()

		runCallbacks(callbacks, v, err)
	})
}

func (b *mergeBackend[V]) provideSync(path string, bypass bool) (V, error) {
	if path == "" {
		var zero V
		return zero, ErrInvalidPath
	}
	_ = bypass // nothing to skip; every sync call goes to the provider
	return b.providerSync(path)
}

func (b *mergeBackend[V]) purge(...string)       {}
func (b *mergeBackend[V]) purgeParent(...string) {}

func (b *mergeBackend[V]) stats() CacheStats { return CacheStats{} }
