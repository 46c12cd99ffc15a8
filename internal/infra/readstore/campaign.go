package readstore

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/converter"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/pkg/config"
)

type CampaignReadStore struct {
	client recordstore.Client
	table  string
	logger *slog.Logger
}

func NewCampaignReadStore(client recordstore.Client, cfg config.StoreConfig, logger *slog.Logger) *CampaignReadStore {
	return &CampaignReadStore{
		client: client,
		table:  cfg.CampaignTable,
		logger: logger,
	}
}

// ListAll keeps store order
func (r *CampaignReadStore) ListAll(ctx context.Context) ([]*campaign.Campaign, error) {
	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to list campaigns", err)
	}

	out := make([]*campaign.Campaign, 0, len(recs))
	for _, rec := range recs {
		out = append(out, converter.ToCampaign(rec))
	}
	return out, nil
}
