package repository

import (
	"context"
	"errors"
	"log/slog"

	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/converter"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/pkg/config"
)

type CampaignRepository struct {
	client recordstore.Client
	table  string
	logger *slog.Logger
}

func NewCampaignRepository(client recordstore.Client, cfg config.StoreConfig, logger *slog.Logger) *CampaignRepository {
	return &CampaignRepository{
		client: client,
		table:  cfg.CampaignTable,
		logger: logger,
	}
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*campaign.Campaign, error) {
	rec, err := r.client.Find(ctx, r.table, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find campaign", err)
	}
	return converter.ToCampaign(rec), nil
}

func (r *CampaignRepository) ReplaceApplicants(ctx context.Context, id string, applicationIDs []string) error {
	_, err := r.client.Update(ctx, r.table, id, recordstore.Fields{
		schema.Campaign.Applicants: recordstore.List(applicationIDs),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to replace campaign applicants", err)
	}
	return nil
}
