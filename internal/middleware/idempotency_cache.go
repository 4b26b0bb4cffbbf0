package middleware

import (
	"sync"
	"time"
)

// defaultIdempotencyEntries bounds memory when clients send a fresh key
// with every request.
const defaultIdempotencyEntries = 10000

// idempotencyCache keeps replayable responses keyed by request fingerprint.
// Expired entries are swept during Set at most once per ttl.
type idempotencyCache struct {
	mu         sync.Mutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: defaultIdempotencyEntries,
		now:        time.Now,
	}
}

// Get returns a response stored no more than ttl ago.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.expired(resp, c.now()) {
		delete(c.items, key)
		return nil, false
	}
	return resp, true
}

// Set stores resp stamped with the current time. When the cache is full the
// oldest entry makes room.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= c.ttl {
		c.sweep(now)
	}
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	resp.Timestamp = now
	c.items[key] = resp
}

// Len returns the number of stored entries, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *idempotencyCache) expired(resp *cachedResponse, now time.Time) bool {
	return now.Sub(resp.Timestamp) > c.ttl
}

func (c *idempotencyCache) sweep(now time.Time) {
	for key, resp := range c.items {
		if c.expired(resp, now) {
			delete(c.items, key)
		}
	}
	c.lastSweep = now
}

func (c *idempotencyCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, resp := range c.items {
		if oldestKey == "" || resp.Timestamp.Before(oldest) {
			oldestKey, oldest = key, resp.Timestamp
		}
	}
	delete(c.items, oldestKey)
}
