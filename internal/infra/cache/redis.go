package cache

import (
	"context"
	"time"

	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil when no address is configured; the cache and lockout then run as no-ops
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrapf(err, "redis ping %s failed", cfg.Addr)
	}
	return rdb, nil
}
