package readstore

import (
	"context"
	"errors"
	"log/slog"

	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/converter"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/usecase/queries"
)

type ApplicationReadStore struct {
	client recordstore.Client
	table  string
	logger *slog.Logger
}

func NewApplicationReadStore(client recordstore.Client, cfg config.StoreConfig, logger *slog.Logger) *ApplicationReadStore {
	return &ApplicationReadStore{
		client: client,
		table:  cfg.ApplicationTable,
		logger: logger,
	}
}

func (r *ApplicationReadStore) ListByChannel(ctx context.Context, channelName string) ([]queries.ApplicationView, error) {
	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{
		Filter: recordstore.Eq(schema.Application.ChannelName, channelName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to list applications by channel", err)
	}

	out := make([]queries.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, converter.ToApplicationView(rec))
	}
	return out, nil
}

func (r *ApplicationReadStore) FindByID(ctx context.Context, id string) (*queries.ApplicationView, error) {
	rec, err := r.client.Find(ctx, r.table, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find application", err)
	}
	view := converter.ToApplicationView(rec)
	return &view, nil
}
