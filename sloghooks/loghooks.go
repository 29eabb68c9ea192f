package sloghooks

import (
	"log/slog"
	"sync/atomic"

	resolve "github.com/jomi-se/enhanced-resolve"
)

type Options struct {
	// Sampling to avoid floods on the hot events; 0/1 = log all.
	HitEvery   uint64
	MissEvery  uint64
	MergeEvery uint64
	EvictEvery uint64
	// Optional path redactor for sensitive trees. Defaults to the
	// path itself.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr   atomic.Uint64
	missCtr  atomic.Uint64
	mergeCtr atomic.Uint64
	evictCtr atomic.Uint64
}

var _ resolve.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(p string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(p)
	}
	return p
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CacheHit(op resolve.Op, path string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("resolve.cache_hit",
		"op", string(op),
		"path", h.redact(path))
}

func (h *Hooks) CacheMiss(op resolve.Op, path string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("resolve.cache_miss",
		"op", string(op),
		"path", h.redact(path))
}

func (h *Hooks) Merged(op resolve.Op, path string) {
	if h.l == nil || !sample(h.opts.MergeEvery, &h.mergeCtr) {
		return
	}
	h.l.Debug("resolve.merged",
		"op", string(op),
		"path", h.redact(path))
}

func (h *Hooks) Adopted(op resolve.Op, path string, waiters int) {
	if h.l == nil {
		return
	}
	h.l.Debug("resolve.adopted",
		"op", string(op),
		"path", h.redact(path),
		"waiters", waiters)
}

func (h *Hooks) Evicted(op resolve.Op, path string) {
	if h.l == nil || !sample(h.opts.EvictEvery, &h.evictCtr) {
		return
	}
	h.l.Debug("resolve.evicted",
		"op", string(op),
		"path", h.redact(path))
}

func (h *Hooks) Purged(op resolve.Op, removed int) {
	if h.l == nil {
		return
	}
	h.l.Info("resolve.purged",
		"op", string(op),
		"removed", removed)
}
