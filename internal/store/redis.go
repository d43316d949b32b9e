package store

import (
	"context" // Context for Redis operations
	"errors"  // errors.Is for redis.Nil
	"fmt"     // Error wrapping
	"time"    // Key TTL

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisBackend stores every scope under "storefront:<scope>:<key>"
type RedisBackend struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Expiry applied on every write, 0 keeps keys forever
}

// NewRedisBackend wraps an existing Redis client
func NewRedisBackend(rdb *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{rdb: rdb, ttl: ttl}
}

// For returns the Store for the given scope
func (b *RedisBackend) For(scope string) Store {
	return &redisStore{rdb: b.rdb, ttl: b.ttl, prefix: "storefront:" + scope + ":"}
}

// Ping checks the Redis connection
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return "", false, nil // Key does not exist
	} else if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err) // Other Redis error
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
