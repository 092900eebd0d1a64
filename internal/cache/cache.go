package cache

import (
	"sync"
	"time"
)

// Cache memoizes upstream fetch results for a short TTL. Expiry is lazy:
// stale entries are removed the next time their key is read. There is no
// capacity bound; the key space is tickers crossed with two payload kinds.
type Cache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

type entry struct {
	value      any
	insertedAt time.Time
}

// New creates a cache whose entries expire ttl after insertion
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

// Get returns the stored value for key. An entry at or past its TTL is
// deleted and reported absent.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.items, key)
		return nil, false
	}

	return e.value, true
}

// Set unconditionally overwrites key with value and a fresh timestamp
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry{
		value:      value,
		insertedAt: c.now(),
	}
}
