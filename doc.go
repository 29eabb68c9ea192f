// Package resolve implements a caching, deduplicating filesystem facade
// for module-path resolution. Resolution walks candidate paths with many
// repeated stat/readdir/readFile/readlink queries; the facade answers
// repeats from a bounded per-operation cache and collapses concurrent
// lookups for the same path into one underlying call.
//
// Components:
//   - provider.Provider: the underlying filesystem (OS, afero, custom).
//   - Backend per operation: capacity > 0 memoizes outcomes in an LRU,
//     capacity <= 0 only merges concurrent calls.
//   - FileSystem: the facade. The async and sync forms of an operation
//     share one cache, a sync call resolves waiters an async call left
//     in flight, and ReadJSON is synthesized from the cached ReadFile
//     when the provider has no native implementation.
//
// Outcomes include errors: a failed lookup replays from cache until the
// next purge, exactly like a successful one.
//
// Invalidation is imperative. There is no TTL and no filesystem
// watching; callers purge the paths they know changed:
//
//	cfs, _ := resolve.New(resolve.Options{Provider: osfs.New(), Capacity: 10000})
//	info, err := cfs.StatSync("/project/node_modules/lib/package.json")
//	cfs.Purge("/project/node_modules/lib/package.json") // after a write
package resolve
