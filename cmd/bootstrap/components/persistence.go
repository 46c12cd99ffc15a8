package components

import (
	"sponsor-portal/internal/infra/cache"
	"sponsor-portal/internal/infra/readstore"
	"sponsor-portal/internal/infra/repository"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/usecase/commands"
	"sponsor-portal/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewStoreConfig,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Influencer
		fx.Annotate(
			readstore.NewInfluencerReadStore,
			fx.As(new(commands.InfluencerReadStore)),
			fx.As(new(queries.ChannelReadStore)),
		),
		// Campaign
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(queries.CampaignReadStore)),
		),
		// Application
		fx.Annotate(
			readstore.NewApplicationReadStore,
			fx.As(new(queries.ApplicationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewApplicationRepository,
			fx.As(new(commands.ApplicationRepository)),
		),
		fx.Annotate(
			repository.NewCampaignRepository,
			fx.As(new(commands.CampaignRepository)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewChannelCache,
			fx.As(new(queries.ChannelCache)),
		),
		fx.Annotate(
			NewLoginLockout,
			fx.As(new(commands.LoginAttemptTracker)),
		),
	),
)

func NewStoreConfig(cfg config.Config) config.StoreConfig {
	return cfg.Store
}

func NewChannelCache(rdb *redis.Client, cfg config.Config) *cache.ChannelCache {
	return cache.NewChannelCache(rdb, cfg.Cache.ChannelTTL)
}

func NewLoginLockout(rdb *redis.Client, cfg config.Config) *cache.LoginLockout {
	return cache.NewLoginLockout(rdb, cfg.Auth.LockoutThreshold, cfg.Auth.LockoutWindow)
}
