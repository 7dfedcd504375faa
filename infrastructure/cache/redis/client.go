// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Provides distributed caching with TTL support and connection pooling

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atomicul/website-differ/pkg/config"
)

// Client implements the Cache interface using Redis
type Client struct {
	rdb *redis.Client
}

// NewRedisCache creates a new Redis cache instance and verifies the
// connection before returning.
func NewRedisCache(cfg config.RedisConfig) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

// Get retrieves a value from Redis
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("key not found")
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL. A zero TTL stores the
// value without expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes a value from Redis
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Close releases the underlying connection pool
func (c *Client) Close() error {
	return c.rdb.Close()
}
