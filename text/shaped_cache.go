package text

import "github.com/gogpu/glyphlayout/internal/cache"

// DefaultShapedTextCacheSize is the number of shaped lines a Font keeps.
const DefaultShapedTextCacheSize = 100

type shapedTextKey struct {
	text string
	size float64
}

// ShapedTextCache is a bounded, strictly least-recently-used cache of
// shaping results keyed by (text, size).
//
// TryGet is the only operation that refreshes recency. Put of a key that is
// already present is a no-op: the first result stays and keeps its position.
//
// ShapedTextCache is not safe for concurrent use.
type ShapedTextCache struct {
	lru *cache.LRU[shapedTextKey, *ShapedText]
}

// NewShapedTextCache creates a cache holding at most capacity lines.
// If capacity <= 0, DefaultShapedTextCacheSize is used.
func NewShapedTextCache(capacity int) *ShapedTextCache {
	if capacity <= 0 {
		capacity = DefaultShapedTextCacheSize
	}
	c := &ShapedTextCache{lru: cache.NewLRU[shapedTextKey, *ShapedText](capacity)}
	c.lru.OnEvict = func(k shapedTextKey, _ *ShapedText) {
		logger().Debug("text: shaped text evicted", "size", k.size, "len", len(k.text))
	}
	return c
}

// TryGet returns the cached result for (text, size) and marks it most
// recently used.
func (c *ShapedTextCache) TryGet(text string, size float64) (*ShapedText, bool) {
	return c.lru.Get(shapedTextKey{text: text, size: size})
}

// Put stores shaped under (text, size) unless the key is already present.
// When the cache is full the least recently used entry is evicted first.
func (c *ShapedTextCache) Put(text string, size float64, shaped *ShapedText) {
	if shaped == nil {
		return
	}
	c.lru.Add(shapedTextKey{text: text, size: size}, shaped)
}

// Clear removes every entry.
func (c *ShapedTextCache) Clear() {
	c.lru.Clear()
}

// Len returns the number of cached lines.
func (c *ShapedTextCache) Len() int {
	return c.lru.Len()
}

// Cap returns the maximum number of cached lines.
func (c *ShapedTextCache) Cap() int {
	return c.lru.Cap()
}
