package bootstrap

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/infra/cache"
	"sponsor-portal/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient may return nil; cache adapters treat that as disabled
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	rdb, err := cache.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Warn("REDIS_ADDR not set; channel cache and login lockout are disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}
