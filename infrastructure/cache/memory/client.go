// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and automatic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Client implements the Cache interface using an in-process store
type Client struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. defaultExpiration applies
// to entries stored with a zero TTL; expired entries are purged twice per
// expiration window.
func NewMemoryCache(defaultExpiration time.Duration) *Client {
	cleanup := 2 * defaultExpiration
	if defaultExpiration <= 0 {
		defaultExpiration = gocache.NoExpiration
		cleanup = 10 * time.Minute
	}
	return &Client{
		store: gocache.New(defaultExpiration, cleanup),
	}
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, errors.New("key not found")
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, errors.New("cached value is not a byte slice")
	}
	return data, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL uses the
// cache's default expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if key == "" {
		return errors.New("key cannot be empty")
	}

	if ttl == 0 {
		c.store.SetDefault(key, value)
	} else {
		c.store.Set(key, value, ttl)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	return nil
}
