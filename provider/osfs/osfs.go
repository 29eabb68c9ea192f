// Package osfs provides the operating-system filesystem as a resolver
// provider.
package osfs

import (
	"io/fs"
	"os"

	pr "github.com/jomi-se/enhanced-resolve/provider"
)

// FS reads straight from the operating system. The zero value is ready
// to use.
type FS struct{}

var _ pr.Provider = FS{}
var _ pr.Lstater = FS{}

func New() FS { return FS{} }

func (FS) Stat(path string) (fs.FileInfo, error)  { return os.Stat(path) }
func (FS) Lstat(path string) (fs.FileInfo, error) { return os.Lstat(path) }
func (FS) ReadFile(path string) ([]byte, error)   { return os.ReadFile(path) }
func (FS) Readlink(path string) (string, error)   { return os.Readlink(path) }

func (FS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
