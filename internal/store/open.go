package store

import (
	"context"                    // Context for connection checks
	"fmt"                        // Error wrapping
	"storefront/internal/config" // Backend selection
	"storefront/internal/db"     // GORM connection

	"github.com/redis/go-redis/v9" // Redis client
)

// Open builds the Backend named by cfg.StoreBackend and checks it is reachable
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	var b Backend
	switch cfg.StoreBackend {
	case config.BackendMemory:
		b = NewMemoryBackend()
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		b = NewRedisBackend(rdb, cfg.StoreTTL)
	case config.BackendMySQL:
		gdb, err := db.Open(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to DB: %w", err)
		}
		b = NewGormBackend(gdb)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}
	if err := b.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping %s store: %w", cfg.StoreBackend, err)
	}
	return b, nil
}
