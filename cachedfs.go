package resolve

import (
	"errors"
	"fmt"
	"io/fs"

	pr "github.com/jomi-se/enhanced-resolve/provider"
)

// cachedFS binds one backend per operation. All backends share the
// configured capacity; each owns its cache and in-flight registry.
type cachedFS struct {
	provider  pr.Provider
	capacity  int
	log       Logger
	hooks     Hooks
	parseJSON func(data []byte) (any, error)

	stat     backend[fs.FileInfo]
	lstat    backend[fs.FileInfo] // nil when the provider cannot lstat
	readdir  backend[[]fs.DirEntry]
	readFile backend[[]byte]
	readJSON backend[any]
	readlink backend[string]
}

var _ FileSystem = (*cachedFS)(nil)

func newCachedFS(opts Options) (*cachedFS, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("resolve: provider is required")
	}

	c := &cachedFS{
		provider: opts.Provider,
		capacity: opts.Capacity,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.ParseJSON != nil {
		c.parseJSON = opts.ParseJSON
	} else {
		c.parseJSON = defaultParseJSON
	}

	p := opts.Provider
	c.stat = newBackend(c.capacity, async(p.Stat), p.Stat, backendContext{op: OpStat, hooks: c.hooks})
	c.readdir = newBackend(c.capacity, async(p.ReadDir), p.ReadDir, backendContext{op: OpReadDir, hooks: c.hooks})
	c.readFile = newBackend(c.capacity, async(p.ReadFile), p.ReadFile, backendContext{op: OpReadFile, hooks: c.hooks})
	c.readlink = newBackend(c.capacity, async(p.Readlink), p.Readlink, backendContext{op: OpReadlink, hooks: c.hooks})

	if lst, ok := p.(pr.Lstater); ok {
		c.lstat = newBackend(c.capacity, async(lst.Lstat), lst.Lstat, backendContext{op: OpLstat, hooks: c.hooks})
	}

	// Bind the provider's native ReadJSON when it has one; otherwise
	// synthesize it on top of the facade's own cached ReadFile so the
	// content fetch is shared with plain ReadFile callers.
	nativeJSON := false
	if jr, ok := p.(pr.JSONReader); ok {
		nativeJSON = true
		c.readJSON = newBackend(c.capacity, async(jr.ReadJSON), jr.ReadJSON, backendContext{op: OpReadJSON, hooks: c.hooks})
	} else {
		c.readJSON = newBackend(c.capacity, c.readJSONFromFile, c.readJSONFromFileSync, backendContext{op: OpReadJSON, hooks: c.hooks})
	}

	c.log.Debug("cached filesystem ready", Fields{
		"capacity":        c.capacity,
		"lstat":           c.lstat != nil,
		"native_readjson": nativeJSON,
	})
	return c, nil
}

func (c *cachedFS) Stat(path string, callback func(fs.FileInfo, error), opts ...CallOption) {
	o := applyCallOptions(opts)
	c.stat.provide(path, callback, o.uncached)
}

func (c *cachedFS) StatSync(path string, opts ...CallOption) (fs.FileInfo, error) {
	o := applyCallOptions(opts)
	return c.stat.provideSync(path, o.uncached)
}

func (c *cachedFS) Lstat(path string, callback func(fs.FileInfo, error), opts ...CallOption) {
	if c.lstat == nil {
		callback(nil, &fs.PathError{Op: "lstat", Path: path, Err: errors.ErrUnsupported})
		return
	}
	o := applyCallOptions(opts)
	c.lstat.provide(path, callback, o.uncached)
}

func (c *cachedFS) LstatSync(path string, opts ...CallOption) (fs.FileInfo, error) {
	if c.lstat == nil {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: errors.ErrUnsupported}
	}
	o := applyCallOptions(opts)
	return c.lstat.provideSync(path, o.uncached)
}

func (c *cachedFS) ReadDir(path string, callback func([]fs.DirEntry, error), opts ...CallOption) {
	o := applyCallOptions(opts)
	c.readdir.provide(path, callback, o.uncached)
}

func (c *cachedFS) ReadDirSync(path string, opts ...CallOption) ([]fs.DirEntry, error) {
	o := applyCallOptions(opts)
	return c.readdir.provideSync(path, o.uncached)
}

func (c *cachedFS) ReadFile(path string, callback func([]byte, error), opts ...CallOption) {
	o := applyCallOptions(opts)
	c.readFile.provide(path, callback, o.uncached)
}

func (c *cachedFS) ReadFileSync(path string, opts ...CallOption) ([]byte, error) {
	o := applyCallOptions(opts)
	return c.readFile.provideSync(path, o.uncached)
}

func (c *cachedFS) ReadJSON(path string, callback func(any, error), opts ...CallOption) {
	o := applyCallOptions(opts)
	c.readJSON.provide(path, callback, o.uncached)
}

func (c *cachedFS) ReadJSONSync(path string, opts ...CallOption) (any, error) {
	o := applyCallOptions(opts)
	return c.readJSON.provideSync(path, o.uncached)
}

func (c *cachedFS) Readlink(path string, callback func(string, error), opts ...CallOption) {
	o := applyCallOptions(opts)
	c.readlink.provide(path, callback, o.uncached)
}

func (c *cachedFS) ReadlinkSync(path string, opts ...CallOption) (string, error) {
	o := applyCallOptions(opts)
	return c.readlink.provideSync(path, o.uncached)
}

// Purge invalidates cached outcomes for the named paths, or everything
// when called with no arguments. Directory listings are invalidated
// through each path's parent: a changed child means the parent's listing
// may be stale, while the child's own listing is untouched.
func (c *cachedFS) Purge(paths ...string) {
	c.stat.purge(paths...)
	if c.lstat != nil {
		c.lstat.purge(paths...)
	}
	c.readdir.purgeParent(paths...)
	c.readFile.purge(paths...)
	c.readJSON.purge(paths...)
	c.readlink.purge(paths...)
	c.log.Debug("cache purge", Fields{"paths": len(paths), "all": len(paths) == 0})
}

func (c *cachedFS) SupportsLstat() bool { return c.lstat != nil }

func (c *cachedFS) Provider() pr.Provider { return c.provider }

func (c *cachedFS) Stats() map[Op]CacheStats {
	out := map[Op]CacheStats{
		OpStat:     c.stat.stats(),
		OpReadDir:  c.readdir.stats(),
		OpReadFile: c.readFile.stats(),
		OpReadJSON: c.readJSON.stats(),
		OpReadlink: c.readlink.stats(),
	}
	if c.lstat != nil {
		out[OpLstat] = c.lstat.stats()
	}
	return out
}

// readJSONFromFile is the synthesized asynchronous ReadJSON: fetch
// content through the cached ReadFile, then parse.
func (c *cachedFS) readJSONFromFile(path string, callback func(any, error)) {
	c.ReadFile(path, func(content []byte, err error) {
		if err != nil {
			callback(nil, err)
			return
		}
		if len(content) == 0 {
			callback(nil, &fs.PathError{Op: "readjson", Path: path, Err: ErrEmptyContent})
			return
		}
		v, err := c.parseJSON(content)
		if err != nil {
			callback(nil, err)
			return
		}
		callback(v, nil)
	})
}

// readJSONFromFileSync parses whatever the cached ReadFileSync returns.
// Unlike the asynchronous form there is no empty-content check; an empty
// file surfaces as the parser's own error.
func (c *cachedFS) readJSONFromFileSync(path string) (any, error) {
	content, err := c.ReadFileSync(path)
	if err != nil {
		return nil, err
	}
	return c.parseJSON(content)
}
