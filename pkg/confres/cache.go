// SPDX-License-Identifier: Apache-2.0

package confres

import "sync"

type cacheEntry struct {
	value     string
	createdMs int64
}

// Cache is an age-aware memoization layer in front of key resolution. An
// entry is fresh while now < createdMs+maxAgeMs; once that window elapses,
// Get calls fallback again and overwrites the entry. It is safe for
// concurrent use; a cache miss may run fallback concurrently on more than
// one goroutine racing for the same key, and the later store simply wins —
// resolution is assumed idempotent, so this is never incorrect, only
// occasionally redundant.
type Cache struct {
	clock Clock
	mu    sync.Mutex
	byKey map[string]cacheEntry
}

// NewCache returns an empty Cache that judges freshness against clock.
func NewCache(clock Clock) *Cache {
	return &Cache{clock: clock, byKey: make(map[string]cacheEntry)}
}

// Get returns the cached value for key if it is still within maxAgeMs of
// its creation time. Otherwise it calls fallback, stores the result, and
// returns that instead. ok is false only when fallback itself reports no
// value.
func (c *Cache) Get(key string, maxAgeMs int64, fallback func() (string, bool)) (string, bool) {
	now := c.clock.NowMs()

	c.mu.Lock()
	entry, exists := c.byKey[key]
	c.mu.Unlock()

	if exists && now < entry.createdMs+maxAgeMs {
		cacheHits.Inc()
		return entry.value, true
	}
	cacheMisses.Inc()

	value, ok := fallback()
	if !ok {
		return "", false
	}

	c.mu.Lock()
	c.byKey[key] = cacheEntry{value: value, createdMs: now}
	c.mu.Unlock()
	cacheStores.Inc()

	return value, true
}

// Invalidate removes key from the cache, forcing the next Get to re-run
// its fallback regardless of age.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.byKey, key)
	c.mu.Unlock()
}
