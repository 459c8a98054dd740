package lookup

import (
	"sync"
	"time"
)

// resultCache memoizes search results per parameter tuple for a fixed
// TTL. It exists only to avoid redundant requests within one interactive
// session: unbounded capacity, no cross-process persistence, entries
// evicted lazily on the next read.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time // injectable for tests
	entries map[string]cacheEntry
}

type cacheEntry struct {
	cards    []Card
	storedAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached result for key if it hasn't expired.
func (c *resultCache) get(key string) ([]Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.cards, true
}

// set stores (or overwrites) the result for key.
func (c *resultCache) set(key string, cards []Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{cards: cards, storedAt: c.now()}
}

// clear drops every entry unconditionally.
func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
