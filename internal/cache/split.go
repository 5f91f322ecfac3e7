// Package cache provides caching utilities for threadsplit
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// SplitCache remembers split results keyed by a hash of the input text
type SplitCache struct {
	cache *lru.Cache[string, types.SplitResult]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSplitCache creates a cache holding at most capacity results
func NewSplitCache(capacity int) (*SplitCache, error) {
	c, err := lru.New[string, types.SplitResult](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create split cache: %w", err)
	}
	return &SplitCache{cache: c}, nil
}

// Get returns a copy of the cached result for text
func (c *SplitCache) Get(text string) (types.SplitResult, bool) {
	res, ok := c.cache.Get(hashContent(text))
	if !ok {
		c.misses.Add(1)
		return types.SplitResult{}, false
	}
	c.hits.Add(1)
	return copyResult(res), true
}

// Put stores a copy of res for text
func (c *SplitCache) Put(text string, res types.SplitResult) {
	c.cache.Add(hashContent(text), copyResult(res))
}

// Len returns the number of cached results
func (c *SplitCache) Len() int {
	return c.cache.Len()
}

// Clear drops every cached result
func (c *SplitCache) Clear() {
	c.cache.Purge()
}

// Stats returns cache hit/miss statistics
func (c *SplitCache) Stats() (hits, misses int64, hitRate float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// copyResult keeps callers from mutating cached slices
func copyResult(res types.SplitResult) types.SplitResult {
	out := types.SplitResult{}
	if res.Tweets != nil {
		out.Tweets = append([]string(nil), res.Tweets...)
	}
	if res.Warnings != nil {
		out.Warnings = append([]string(nil), res.Warnings...)
	}
	return out
}

// hashContent creates a hash of the content for cache keys
func hashContent(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:16])
}
