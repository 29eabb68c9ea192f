// usage:
//
// import (
//
//	"log/slog"
//
//	resolve "github.com/jomi-se/enhanced-resolve"
//	"github.com/jomi-se/enhanced-resolve/hooks/async"
//	"github.com/jomi-se/enhanced-resolve/provider/osfs"
//	"github.com/jomi-se/enhanced-resolve/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    HitEvery: 1000, // sample the hot events
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cfs, _ := resolve.New(resolve.Options{
//	    Provider: osfs.New(),
//	    Capacity: 10000,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	resolve "github.com/jomi-se/enhanced-resolve"
)

type Hooks struct {
	inner resolve.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ resolve.Hooks = (*Hooks)(nil)

func New(inner resolve.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheHit(op resolve.Op, p string)  { h.try(func() { h.inner.CacheHit(op, p) }) }
func (h *Hooks) CacheMiss(op resolve.Op, p string) { h.try(func() { h.inner.CacheMiss(op, p) }) }
func (h *Hooks) Merged(op resolve.Op, p string)    { h.try(func() { h.inner.Merged(op, p) }) }
func (h *Hooks) Evicted(op resolve.Op, p string)   { h.try(func() { h.inner.Evicted(op, p) }) }
func (h *Hooks) Purged(op resolve.Op, n int)       { h.try(func() { h.inner.Purged(op, n) }) }
func (h *Hooks) Adopted(op resolve.Op, p string, n int) {
	h.try(func() { h.inner.Adopted(op, p, n) })
}
