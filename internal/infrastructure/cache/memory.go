// Package cache provides a thread-safe in-memory TTL cache for resolved
// source records.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nutriscore/backend/internal/domain"
)

// cacheItem is a single record with its expiration.
type cacheItem struct {
	record     domain.SourceRecord
	expiration time.Time
}

// MemoryCache implements domain.CacheRepository in process. Values are
// deterministic per key, so concurrent writes for the same key may race
// safely.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates an in-memory cache and starts its sweeper.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
	}
	go c.sweep()
	return c
}

// Get returns the cached record for key, or ErrCacheMiss. A copy is
// returned so callers cannot mutate the stored value.
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.SourceRecord, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	record := item.record
	return &record, nil
}

// Set stores a record under key with the given TTL.
func (c *MemoryCache) Set(_ context.Context, key string, record *domain.SourceRecord, ttl time.Duration) error {
	stored := *record
	stored.CachedAt = time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data[key] = cacheItem{
		record:     stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
	return nil
}

// Size returns the current number of cached records.
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// sweep removes expired entries every 10 minutes.
func (c *MemoryCache) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
