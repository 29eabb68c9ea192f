// Package aferofs adapts an afero.Fs to the resolver provider contract,
// so resolution can run against in-memory, read-only, or composed
// filesystems in addition to the real one.
package aferofs

import (
	"io/fs"

	"github.com/spf13/afero"

	pr "github.com/jomi-se/enhanced-resolve/provider"
)

// FS wraps an afero filesystem.
type FS struct {
	fs afero.Fs
}

var _ pr.Provider = (*FS)(nil)
var _ pr.Lstater = (*FS)(nil)

func New(base afero.Fs) *FS { return &FS{fs: base} }

func (a *FS) Stat(path string) (fs.FileInfo, error) {
	return a.fs.Stat(path)
}

// Lstat uses afero's optional Lstater and otherwise behaves like Stat,
// matching afero's own LstatIfPossible fallback.
func (a *FS) Lstat(path string) (fs.FileInfo, error) {
	if lst, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

func (a *FS) ReadDir(path string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (a *FS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *FS) Readlink(path string) (string, error) {
	if lr, ok := a.fs.(afero.LinkReader); ok {
		return lr.ReadlinkIfPossible(path)
	}
	return "", &fs.PathError{Op: "readlink", Path: path, Err: afero.ErrNoReadlink}
}
