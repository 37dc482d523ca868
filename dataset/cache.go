package dataset

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache keeps loaded region data for a limited time. It is owned by whoever
// creates it and passed to a Loader explicitly. Safe for concurrent use.
type Cache struct {
	items *cache.Cache
}

// NewCache creates a cache whose entries expire after ttl. Expired entries
// are purged every cleanupInterval; a non-positive interval disables purging.
func NewCache(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{items: cache.New(ttl, cleanupInterval)}
}

// Get returns the cached data for key.
func (c *Cache) Get(key string) (*RegionData, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.(*RegionData)
	return data, ok
}

// Set stores data under key with the default expiration.
func (c *Cache) Set(key string, data *RegionData) {
	c.items.SetDefault(key, data)
}

// Invalidate removes key.
func (c *Cache) Invalidate(key string) {
	c.items.Delete(key)
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.items.Flush()
}

// Len returns the number of entries, including expired ones not yet purged.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
