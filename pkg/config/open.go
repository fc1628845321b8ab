package config

import (
	"context"
	"net/http"
	"time"

	"github.com/matzehuels/copybook/pkg/cache"
	"github.com/matzehuels/copybook/pkg/integrations/hanzi"
	"github.com/matzehuels/copybook/pkg/poetry"
)

// Open builds the configured cache backend. The file backend creates its
// directory; the redis backend pings the server.
func (c CacheConfig) Open(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendMemory:
		return cache.NewMemoryCache(), nil
	case BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   c.Prefix,
		})
	default:
		dir := c.Dir
		if dir == "" {
			d, err := DefaultCacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// Client builds the stroke-data client. Fetched documents are cached in
// backend for ttl.
func (c StrokesConfig) Client(backend cache.Cache, ttl time.Duration) *hanzi.Client {
	client := hanzi.NewClient(backend, ttl).WithBaseURL(c.BaseURL)
	if c.Timeout > 0 {
		client.SetHTTPClient(&http.Client{Timeout: c.Timeout})
	}
	return client
}

// Open returns the configured poem library and a function releasing it.
func (c PoetryConfig) Open(ctx context.Context) (poetry.Library, func(context.Context) error, error) {
	if c.MongoURI == "" {
		return poetry.Builtin(), func(context.Context) error { return nil }, nil
	}
	lib, err := poetry.NewMongoLibrary(ctx, poetry.MongoConfig{
		URI:        c.MongoURI,
		Database:   c.MongoDatabase,
		Collection: c.MongoCollection,
	})
	if err != nil {
		return nil, nil, err
	}
	return lib, lib.Close, nil
}
