package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture path to a decoded image.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe, path-keyed texture cache. Load failures
// are cached too, so a missing file is probed at most once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*image.NRGBA)}
}

// Resolve loads and caches a texture. Returns nil when the file is
// missing or undecodable.
func (c *Cache) Resolve(path string) *image.NRGBA {
	// Fast path: read lock
	c.mu.RLock()
	if img, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, _ := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if cached, ok := c.items[path]; ok {
		c.mu.Unlock()
		return cached
	}
	c.items[path] = img
	c.mu.Unlock()

	return img
}
