// Package lru implements the bounded recency cache used by the caching
// backends. It wraps hashicorp's LRU with hit/miss/eviction accounting
// and reports which key was displaced when an insert overflows capacity.
package lru

import (
	"sync"
	"sync/atomic"

	hlru "github.com/hashicorp/golang-lru/v2"
)

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// Cache is a fixed-capacity LRU keyed by path. Get and Add both promote
// the touched entry to most recently used; inserting a new key at
// capacity evicts the least recently used entry. Safe for concurrent use.
type Cache[V any] struct {
	inner    *hlru.Cache[string, V]
	capacity int

	mu sync.Mutex // serializes eviction accounting in Add

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New returns a cache bounded to capacity entries. Capacities below one
// are raised to one entry.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	inner, _ := hlru.New[string, V](capacity)
	return &Cache[V]{inner: inner, capacity: capacity}
}

// Get returns the value stored under key and promotes it.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.inner.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Add stores value under key, promoting it to most recently used. It
// reports the key evicted to make room, if any.
func (c *Cache[V]) Add(key string, value V) (evictedKey string, evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inner.Len() >= c.capacity && !c.inner.Contains(key) {
		evictedKey, _, evicted = c.inner.GetOldest()
	}
	c.inner.Add(key, value)
	if evicted {
		c.evictions.Add(1)
	}
	return evictedKey, evicted
}

// Remove drops key from the cache, reporting whether it was present.
func (c *Cache[V]) Remove(key string) bool {
	return c.inner.Remove(key)
}

// Clear empties the cache. Counters are kept.
func (c *Cache[V]) Clear() {
	c.inner.Purge()
}

// Len returns the current entry count.
func (c *Cache[V]) Len() int {
	return c.inner.Len()
}

// Capacity returns the configured entry bound.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
