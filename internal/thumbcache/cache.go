// Package thumbcache provides the bounded LRU cache backing every thumbnail
// view in the app. It is the single shared store across worker goroutines;
// components must not keep private thumbnail caches of their own.
package thumbcache

import (
	"image"
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Key identifies one rendered thumbnail. Zoom is quantized to the nearest
// 0.1 before key construction, so near-identical zoom levels collapse to the
// same entry and key cardinality stays bounded.
type Key struct {
	Path       string
	PageIndex  int
	ZoomBucket int
}

// NewKey builds a cache key with the quantized zoom bucket.
func NewKey(path string, pageIndex int, zoom float64) Key {
	return Key{
		Path:       path,
		PageIndex:  pageIndex,
		ZoomBucket: int(math.Round(zoom * 10)),
	}
}

// Cache is a thread-safe LRU of rendered thumbnails with a hard capacity
// ceiling. Recency is updated on every read as well as on writes, so a hot
// entry that is only ever read is never evicted ahead of a cold one. It never
// renders or touches the filesystem; misses are the caller's problem.
type Cache struct {
	mu  sync.Mutex
	lru *simplelru.LRU[Key, image.Image]
}

// New creates a cache holding at most maxEntries thumbnails.
func New(maxEntries int) *Cache {
	// simplelru only errors on a non-positive size
	lru, err := simplelru.NewLRU[Key, image.Image](maxEntries, nil)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: lru}
}

// Get returns the cached thumbnail for (path, pageIndex, zoom), refreshing
// its recency. The second return reports whether the entry was present.
func (c *Cache) Get(path string, pageIndex int, zoom float64) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Get(NewKey(path, pageIndex, zoom))
}

// Put inserts or replaces a thumbnail, evicting the least-recently-used
// entry when the cache is at capacity.
func (c *Cache) Put(path string, pageIndex int, zoom float64, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(NewKey(path, pageIndex, zoom), img)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
}

// ClearForDocument removes all entries whose path component matches. Called
// when a document is closed or replaced so stale pages are never served.
func (c *Cache) ClearForDocument(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.lru.Keys() {
		if key.Path == path {
			c.lru.Remove(key)
		}
	}
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}
