// Package cache provides the Redis-backed response cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/port"
)

// Config holds Redis connection settings for the response cache.
type Config struct {
	Address  string
	Password string
	Database int

	// TTL is the lifetime of cached answers. Zero means entries never
	// expire, which matches the small, repetitive question space of
	// dashboard-style usage; set a TTL to bound staleness instead.
	TTL time.Duration
}

// RedisCache memoizes formatted answers in Redis, keyed by a content hash
// of the resolved question. Values survive process restarts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// Key derives the cache key for a resolved question: hex-encoded SHA-256 of
// the exact text. No normalization happens here, so questions differing only
// in whitespace produce distinct keys. That is deliberate current behaviour,
// not necessarily desired.
func Key(question string) string {
	sum := sha256.Sum256([]byte(question))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached answer for key, or port.ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", port.ErrCacheMiss
		}
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Put stores an answer under key with the configured TTL.
func (c *RedisCache) Put(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Flush clears every cached answer. Run after a corpus or schema change,
// since entries are otherwise never invalidated.
func (c *RedisCache) Flush(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}

// Close releases the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
