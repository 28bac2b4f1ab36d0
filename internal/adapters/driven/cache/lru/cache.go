// Package lru provides a bounded embedding cache backed by a
// least-recently-used eviction policy.
package lru

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.EmbeddingCache = (*Cache)(nil)

// DefaultSize is the entry bound used when none is configured.
const DefaultSize = 1024

// Cache is an LRU-bounded embedding cache. Safe for concurrent use.
type Cache struct {
	inner *lru.Cache[string, []float32]
}

// New creates a cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	inner, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Get returns the cached vector for the key, if present.
func (c *Cache) Get(key string) ([]float32, bool) {
	return c.inner.Get(key)
}

// Add stores a vector under the key, evicting the least recently used
// entry when the cache is full.
func (c *Cache) Add(key string, vector []float32) {
	c.inner.Add(key, vector)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.inner.Len()
}

// Purge removes all entries.
func (c *Cache) Purge() {
	c.inner.Purge()
}
