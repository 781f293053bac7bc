package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// RefreshTTL indicates whether to refresh the TTL on access
	RefreshTTL bool
	// CacheName prefixes every key as CacheName::key
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:        1 * time.Hour,
		RefreshTTL: false,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// WithRefreshTTL enables TTL refresh on access
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the key prefix
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides JSON-serialized get/set on top of Client
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// Key constructs the full cache key using CacheName::cacheKey format
func (c *Cache) Key(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// TTL returns the configured time to live
func (c *Cache) TTL() time.Duration {
	return c.opts.TTL
}

// Client returns the underlying client
func (c *Cache) Client() *Client {
	return c.client
}

// Get retrieves a value from cache and deserializes it into dest, reporting whether the key existed
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	fullKey := c.Key(key)
	data, found, err := c.client.GetBytes(ctx, fullKey)
	if err != nil || !found {
		return false, err
	}

	if c.opts.RefreshTTL {
		if err := c.client.Expire(ctx, fullKey, c.opts.TTL); err != nil {
			return true, fmt.Errorf("failed to refresh ttl: %w", err)
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return true, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.Key(key), data, c.opts.TTL)
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.Key(key))
}
