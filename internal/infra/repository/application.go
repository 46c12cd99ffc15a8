package repository

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/converter"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/usecase/commands"
)

type ApplicationRepository struct {
	client             recordstore.Client
	table              string
	influencerKeyField string
	campaignKeyField   string
	logger             *slog.Logger
}

func NewApplicationRepository(client recordstore.Client, cfg config.StoreConfig, logger *slog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		client:             client,
		table:              cfg.ApplicationTable,
		influencerKeyField: cfg.InfluencerKeyField,
		campaignKeyField:   cfg.CampaignKeyField,
		logger:             logger,
	}
}

// ExistsFor reports whether key's influencer already applied to key's campaign.
// Airtable formulas see link cells as the linked records' primary values, so by default the
// store filters on the plain channel-name column and the link ids are compared here.
// Configured key fields must expose record ids as text and are filtered on directly.
func (r *ApplicationRepository) ExistsFor(ctx context.Context, key commands.ApplicationKey) (bool, error) {
	if r.influencerKeyField != "" && r.campaignKeyField != "" {
		return r.existsByKeyFields(ctx, key)
	}

	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{
		Filter: recordstore.Eq(schema.Application.ChannelName, key.ChannelName),
		Fields: []string{schema.Application.Influencer, schema.Application.Campaign},
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to check for existing application", err)
	}
	for _, rec := range recs {
		app := converter.ToApplication(rec)
		if slices.Contains(app.InfluencerIDs, key.InfluencerID) && slices.Contains(app.CampaignIDs, key.CampaignID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ApplicationRepository) existsByKeyFields(ctx context.Context, key commands.ApplicationKey) (bool, error) {
	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{
		Filter: recordstore.And(
			recordstore.Has(r.influencerKeyField, key.InfluencerID),
			recordstore.Has(r.campaignKeyField, key.CampaignID),
		),
		Fields:     []string{schema.Application.ChannelName},
		MaxRecords: 1,
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to check for existing application", err)
	}
	return len(recs) > 0, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app commands.NewApplication) (string, error) {
	recs, err := r.client.Create(ctx, r.table, recordstore.Fields{
		schema.Application.ChannelName: app.ChannelName,
		schema.Application.Influencer:  recordstore.List([]string{app.InfluencerID}),
		schema.Application.Email:       app.Email,
		schema.Application.Campaign:    recordstore.List([]string{app.CampaignID}),
	})
	if err != nil {
		return "", infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to create application", err)
	}
	if len(recs) == 0 {
		return "", nil
	}
	return recs[0].ID, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Destroy(ctx, r.table, id); err != nil {
		return r.wrap(err, "failed to delete application")
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*application.Application, error) {
	rec, err := r.client.Find(ctx, r.table, id)
	if err != nil {
		return nil, r.wrap(err, "failed to find application")
	}
	return converter.ToApplication(rec), nil
}

func (r *ApplicationRepository) UpdateCheckin(ctx context.Context, id string, checkin application.Checkin) error {
	_, err := r.client.Update(ctx, r.table, id, recordstore.Fields{
		schema.Application.CheckinDate: checkin.Date(),
		schema.Application.CheckinSite: checkin.Site(),
	})
	if err != nil {
		return r.wrap(err, "failed to update check-in")
	}
	return nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status application.Status) error {
	fields := recordstore.Fields{
		schema.Application.Status: status.String(),
	}
	if status.ClearsCheckin() {
		fields[schema.Application.CheckinDate] = nil
		fields[schema.Application.CheckinSite] = nil
	}

	if _, err := r.client.Update(ctx, r.table, id, fields); err != nil {
		return r.wrap(err, "failed to update reservation status")
	}
	return nil
}

// wrap keeps not-found errors as they are so callers can map them to 404
func (r *ApplicationRepository) wrap(err error, msg string) error {
	if errors.Is(err, recordstore.ErrNotFound) {
		return err
	}
	return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, msg, err)
}
