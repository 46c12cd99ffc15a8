package readstore

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/converter"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/usecase/queries"
)

type InfluencerReadStore struct {
	client recordstore.Client
	table  string
	logger *slog.Logger
}

func NewInfluencerReadStore(client recordstore.Client, cfg config.StoreConfig, logger *slog.Logger) *InfluencerReadStore {
	return &InfluencerReadStore{
		client: client,
		table:  cfg.InfluencerTable,
		logger: logger,
	}
}

// FindByChannelName returns nil without error when nothing matches
func (r *InfluencerReadStore) FindByChannelName(ctx context.Context, channelName string, exact bool) (*queries.InfluencerView, error) {
	var filter recordstore.Formula = recordstore.Contains(schema.Influencer.ChannelName, channelName)
	if exact {
		filter = recordstore.Eq(schema.Influencer.ChannelName, channelName)
	}

	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{
		Filter:     filter,
		MaxRecords: 1,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find influencer by channel name", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return converter.ToInfluencerView(recs[0]), nil
}

// ListChannelNames flattens list-valued channel cells, de-duplicates and sorts
func (r *InfluencerReadStore) ListChannelNames(ctx context.Context) ([]string, error) {
	recs, err := r.client.Select(ctx, r.table, recordstore.SelectOptions{
		Fields: []string{schema.Influencer.ChannelName},
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to list channel names", err)
	}

	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		for _, n := range recordstore.Strings(rec.Fields, schema.Influencer.ChannelName) {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
