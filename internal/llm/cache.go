package llm

import (
	"sync"
	"time"
)

// cacheEntry represents a cached category suggestion.
type cacheEntry struct {
	expiry   time.Time
	category string
}

// suggestionCache provides thread-safe caching for category suggestions.
// Expired entries are dropped lazily on lookup and on insert.
type suggestionCache struct {
	entries map[string]cacheEntry
	now     func() time.Time
	ttl     time.Duration
	mu      sync.RWMutex
}

// newSuggestionCache creates a new cache with the specified TTL.
func newSuggestionCache(ttl time.Duration) *suggestionCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	return &suggestionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get retrieves a suggestion from the cache if it exists and hasn't expired.
func (c *suggestionCache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return "", false
	}

	if c.now().After(entry.expiry) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}

	return entry.category, true
}

// set stores a suggestion in the cache.
func (c *suggestionCache) set(key, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{
		category: category,
		expiry:   now.Add(c.ttl),
	}
}

// size returns the number of entries in the cache.
func (c *suggestionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
