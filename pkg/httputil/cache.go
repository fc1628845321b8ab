package httputil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/copybook/pkg/cache"
)

// Cache stores JSON-marshalable values in a [cache.Cache] backend.
//
// Entries expire according to the TTL given at construction; a TTL of 0
// means entries never expire. Concurrency safety is that of the backend.
//
// Use [Cache.Namespace] to create scoped views that automatically prefix
// keys, avoiding collisions between different data sources:
//
//	hanzi := c.Namespace("hanzi:")
//	hanzi.Set(ctx, "永", data)  // key becomes "hanzi:永"
type Cache struct {
	backend cache.Cache
	ttl     time.Duration
	prefix  string
}

// NewCache creates a Cache over backend. A nil backend stores nothing.
func NewCache(backend cache.Cache, ttl time.Duration) *Cache {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Cache{backend: backend, ttl: ttl}
}

// TTL returns the time-to-live applied to new entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v.
//
// It reports (true, nil) on a hit and (false, nil) on a miss. An entry that
// cannot be decoded into v counts as a miss. Backend failures are returned
// as errors and leave v unchanged.
func (c *Cache) Get(ctx context.Context, key string, v any) (bool, error) {
	data, ok, err := c.backend.Get(ctx, c.prefix+key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// Set marshals v to JSON and stores it under key, replacing any previous
// entry and restarting its TTL.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.backend.Set(ctx, c.prefix+key, data, c.ttl)
}

// Delete removes the entry for key. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.backend.Delete(ctx, c.prefix+key)
}

// Namespace returns a view that prefixes all keys with prefix. The view
// shares the backend and TTL. Calls can be chained:
//
//	c.Namespace("cdn:").Namespace("hanzi:")  // prefix: "cdn:hanzi:"
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		backend: c.backend,
		ttl:     c.ttl,
		prefix:  c.prefix + prefix,
	}
}
