package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed, TTL-aware wrapper around ristretto keyed by string.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
	ttl       time.Duration
}

// New creates a cache whose entries expire after ttl. costFunc sizes entries
// set with cost 0.
func New[T any](costFunc func(T) int64, cacheType string, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // keys to track frequency of (100k)
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
		ttl:       ttl,
	}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's TTL and waits until it is visible to Get.
// It reports false when ristretto dropped or rejected the entry.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	ok := c.impl.SetWithTTL(key, value, cost, c.ttl)
	c.impl.Wait()
	return ok
}

// Touch re-stores an existing value to restart its TTL.
func (c *Cache[T]) Touch(key string, value T) bool {
	return c.Set(key, value, 0)
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// ItemCount returns the number of live entries.
func (c *Cache[T]) ItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns counters for the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":     c.cacheType,
		"ttl_seconds":    c.ttl.Seconds(),
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"evicted":        metrics.KeysEvicted(),
		"sets_dropped":   metrics.SetsDropped(),
		"sets_rejected":  metrics.SetsRejected(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"current_items":  c.ItemCount(),
	}
}
