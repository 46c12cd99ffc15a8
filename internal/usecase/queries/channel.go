package queries

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/pkg/errs"
)

type ChannelQueries interface {
	ListChannelNames(ctx context.Context) ([]string, error)
}

type ChannelReadStore interface {
	ListChannelNames(ctx context.Context) ([]string, error)
}

// ChannelCache is best effort; errors are logged and the store is read instead
type ChannelCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, names []string) error
}

type channelQueriesImpl struct {
	readStore ChannelReadStore
	cache     ChannelCache
	logger    *slog.Logger
}

func NewChannelQueries(readStore ChannelReadStore, cache ChannelCache, logger *slog.Logger) ChannelQueries {
	return &channelQueriesImpl{
		readStore: readStore,
		cache:     cache,
		logger:    logger,
	}
}

func (q *channelQueriesImpl) ListChannelNames(ctx context.Context) ([]string, error) {
	names, hit, err := q.cache.Get(ctx)
	if err != nil {
		q.logger.Warn("channel cache read failed", slog.Any("error", err))
	}
	if hit {
		return names, nil
	}

	names, err = q.readStore.ListChannelNames(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list channel names")
	}

	if err := q.cache.Set(ctx, names); err != nil {
		q.logger.Warn("channel cache write failed", slog.Any("error", err))
	}
	return names, nil
}
