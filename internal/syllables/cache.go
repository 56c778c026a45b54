package syllables

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes another Segmenter. Safe for concurrent use.
type Cached struct {
	inner Segmenter
	cache *lru.Cache[string, []string]
}

// NewCached wraps s with an LRU cache holding up to size names
func NewCached(s Segmenter, size int) (*Cached, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: s, cache: cache}, nil
}

// Segment implements Segmenter. The returned slice is owned by the caller.
func (c *Cached) Segment(name string) []string {
	if parts, ok := c.cache.Get(name); ok {
		return append([]string(nil), parts...)
	}
	parts := c.inner.Segment(name)
	c.cache.Add(name, parts)
	return append([]string(nil), parts...)
}

// Len returns the number of cached names
func (c *Cached) Len() int {
	return c.cache.Len()
}
