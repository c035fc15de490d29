package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache simple in-memory cache implementation using go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves the value for a key
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	if !ok {
		// Stored value of an unexpected type is treated as missing
		return nil, false
	}
	return data, true
}

// Set stores a value with the specified TTL
// If ttl is 0, uses cache's default expiration
// If ttl is NoExpiration, the item never expires
func (gc *GoCache) Set(key string, value []byte, ttl time.Duration) {
	gc.cache.Set(key, value, ttl)
}

// Delete removes an item from cache
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
