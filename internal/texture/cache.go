package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture reference to a decoded NRGBA image.
type Resolver interface {
	Resolve(ref string) *image.NRGBA
}

// Cache is a concurrency-safe decode cache. Batch workers retexture
// several documents in parallel and frequently share texture files, so
// each file is decoded at most once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img    *image.NRGBA
	loaded bool // load was attempted; img may still be nil
}

// NewCache creates a texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Path resolves a reference to its filesystem path without decoding.
func (c *Cache) Path(ref string) (string, bool) {
	return c.index.ResolvePath(ref)
}

// Resolve loads and caches a texture by reference. Returns nil if the
// reference cannot be resolved or decoded.
func (c *Cache) Resolve(ref string) *image.NRGBA {
	path, ok := c.index.ResolvePath(ref)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, _ := LoadFile(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, loaded: true}
	c.mu.Unlock()

	return img
}
