package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"sponsor-portal/internal/infra/db"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/recordstore/airtable"
	"sponsor-portal/internal/infra/recordstore/memstore"
	"sponsor-portal/internal/infra/recordstore/pgstore"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

// NewRecordStore selects the backend and wraps it with read retries and metrics
func NewRecordStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (recordstore.Client, error) {
	var base recordstore.Client

	switch cfg.Store.Backend {
	case config.BackendAirtable:
		base = airtable.NewClient(cfg.Airtable)

	case config.BackendMemory:
		store := memstore.New(clk)
		if cfg.Store.SeedFile != "" {
			if err := store.LoadSeedFile(cfg.Store.SeedFile); err != nil {
				return nil, fmt.Errorf("failed to load seed file: %w", err)
			}
		}
		logger.Warn("using in-memory record store; data is lost on restart")
		base = store

	case config.BackendPostgres:
		if err := pgstore.RunMigrations(cfg.Postgres.BuildDSN(), logger); err != nil {
			return nil, err
		}
		pool, cleanup, err := db.Connect(context.Background(), cfg.Postgres)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		base = pgstore.New(pool)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	logger.Info("record store ready", "backend", cfg.Store.Backend)
	return recordstore.Instrument(
		recordstore.WithReadRetry(base, cfg.Store.ReadRetries, cfg.Store.ReadRetryBackoff, logger),
	), nil
}
