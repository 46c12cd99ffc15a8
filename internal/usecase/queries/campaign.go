package queries

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/domain/tier"
)

type CampaignQueries interface {
	// ListCampaigns never fails; a store outage yields an empty catalog
	ListCampaigns(ctx context.Context, level tier.Level) []CampaignView
}

type CampaignReadStore interface {
	ListAll(ctx context.Context) ([]*campaign.Campaign, error)
}

type campaignQueriesImpl struct {
	readStore CampaignReadStore
	logger    *slog.Logger
}

func NewCampaignQueries(readStore CampaignReadStore, logger *slog.Logger) CampaignQueries {
	return &campaignQueriesImpl{
		readStore: readStore,
		logger:    logger,
	}
}

func (q *campaignQueriesImpl) ListCampaigns(ctx context.Context, level tier.Level) []CampaignView {
	campaigns, err := q.readStore.ListAll(ctx)
	if err != nil {
		q.logger.Error("failed to list campaigns, serving empty catalog",
			slog.String("tier", level.String()),
			slog.Any("error", err))
		return []CampaignView{}
	}

	views := make([]CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		terms := c.TermsFor(level)
		views = append(views, CampaignView{
			ID:                c.ID,
			AccommodationName: c.AccommodationName,
			Location:          c.Location,
			Deadline:          c.Deadline,
			DetailURL:         c.DetailURL,
			ApplicationURL:    c.ApplicationURL,
			Features:          c.Features,
			Price:             terms.Price,
			TotalCount:        terms.Total,
			AvailableCount:    terms.Available,
			IsClosed:          terms.IsClosed(),
		})
	}
	return views
}
