// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/gogpu/spheretext/internal/cache"
	"github.com/gogpu/spheretext/text"
)

// CacheStats contains cache counters.
type CacheStats = cache.Stats

// DefaultCacheSize is the number of geometries a Cache keeps by default.
const DefaultCacheSize = 16

type cacheKey struct {
	tf     *text.Typeface
	text   string
	params Params
}

// Cache keeps recently built geometries. Geometry is immutable, so a
// cached value may be shared. Failed builds are not cached.
//
// Cache is safe for concurrent use.
type Cache struct {
	lru *cache.LRU[cacheKey, *TextGeometry]
}

// NewCache returns a cache holding up to size geometries. A non-positive
// size means DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: cache.New[cacheKey, *TextGeometry](size)}
}

// Build returns the cached geometry for s, tf and p, building it with
// the package-level Build on a miss.
func (c *Cache) Build(s string, tf *text.Typeface, p Params) (*TextGeometry, error) {
	key := cacheKey{tf: tf, text: text.Normalize(s), params: p}
	if g, ok := c.lru.Get(key); ok {
		return g, nil
	}
	g, err := Build(s, tf, p)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, g)
	return g, nil
}

// Len returns the number of cached geometries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Stats returns the cache counters.
func (c *Cache) Stats() CacheStats {
	return c.lru.Stats()
}
