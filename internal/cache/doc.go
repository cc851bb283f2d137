// Package cache provides the bounded caching primitive used by glyphlayout.
//
// # LRU[K, V]
//
// A strict least-recently-used map with a fixed entry count. Get refreshes
// recency; Add inserts only when the key is absent, so the first writer wins
// and a duplicate Add never reorders the list.
//
//	c := cache.NewLRU[string, int](100)
//	c.Add("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// LRU is not safe for concurrent use. Owners serialize access, the same way
// a font instance is only touched from the rendering loop that owns it.
package cache
