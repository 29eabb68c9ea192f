// Package provider defines the filesystem abstraction consumed by the
// cached facade.
//
// Implementations MUST be result-transparent: the facade stores whatever
// a call returns (value or error) and replays it unaltered to later
// lookups of the same path, so results must stay valid after the call
// returns (no reused buffers, no mutation of returned slices).
//
// Paths are opaque keys. The facade performs no normalization and no
// resolution of relative segments; two spellings of the same file are
// two cache entries. Callers normalize before asking.
package provider

import (
	"io/fs"
)

// Provider is a minimal synchronous filesystem.
// Must be safe for concurrent use: the facade issues calls from multiple
// goroutines and may invoke the same operation for different paths in
// parallel.
type Provider interface {
	// Stat follows symlinks and describes the target.
	Stat(path string) (fs.FileInfo, error)

	// ReadDir lists a directory in the provider's native order.
	ReadDir(path string) ([]fs.DirEntry, error)

	// ReadFile returns the file's full content.
	ReadFile(path string) ([]byte, error)

	// Readlink returns a symlink's target without following it.
	Readlink(path string) (string, error)
}

// Lstater is an optional capability. Providers that can describe a
// symlink itself (rather than its target) implement it; the facade
// exposes Lstat only when they do.
type Lstater interface {
	Lstat(path string) (fs.FileInfo, error)
}

// JSONReader is an optional capability. Providers that parse JSON
// natively implement it; otherwise the facade synthesizes ReadJSON from
// its own cached ReadFile.
type JSONReader interface {
	ReadJSON(path string) (any, error)
}
