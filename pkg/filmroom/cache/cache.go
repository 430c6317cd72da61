package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// item wraps a cached value with its expiry time
type item struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache is a small LRU cache with per-entry expiry, used for read-heavy
// responses that tolerate slightly stale data.
type TTLCache struct {
	lru *lru.Cache[string, item]
}

// New creates a TTLCache holding at most size entries
func New(size int) (*TTLCache, error) {
	l, err := lru.New[string, item](size)
	if err != nil {
		return nil, err
	}
	return &TTLCache{lru: l}, nil
}

// Set stores a value with the given TTL
func (c *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	c.lru.Add(key, item{value: value, expiresAt: time.Now().Add(ttl)})
}

// Get returns the value for key, or nil if absent or expired
func (c *TTLCache) Get(key string) interface{} {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return entry.value
}

// Delete removes a key
func (c *TTLCache) Delete(key string) {
	c.lru.Remove(key)
}
