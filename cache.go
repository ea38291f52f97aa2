package resval

import "sync"

// kind identifies the operation a cached value belongs to.
type kind uint8

const (
	kindResValue kind = iota + 1
	kindWidthPercent
	kindHeightPercent
)

// cacheKey is the composite key of a memoized value. Entries are only
// valid for the exact screen size they were computed under.
type cacheKey struct {
	kind   kind
	input  float64
	param  float64
	width  float64
	height float64
}

// valueCache is an unbounded memo table cleared as a whole.
type valueCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]float64
}

func newValueCache() *valueCache {
	return &valueCache{entries: make(map[cacheKey]float64)}
}

func (c *valueCache) get(k cacheKey) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

func (c *valueCache) put(k cacheKey, v float64) {
	c.mu.Lock()
	c.entries[k] = v
	c.mu.Unlock()
}

// clear drops every entry and returns how many were dropped.
func (c *valueCache) clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	if n > 0 {
		c.entries = make(map[cacheKey]float64)
	}
	return n
}

func (c *valueCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
