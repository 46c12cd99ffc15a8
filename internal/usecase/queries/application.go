package queries

import (
	"context"

	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/pkg/errs"
)

var (
	ErrApplicationNotFound = errs.New("application not found")
)

type ApplicationQueries interface {
	ListMine(ctx context.Context, channelName string) ([]ApplicationView, error)
	// GetOwned returns ErrApplicationNotFound both for a missing id and for someone else's application
	GetOwned(ctx context.Context, id, channelName string) (*ApplicationView, error)
}

type ApplicationReadStore interface {
	ListByChannel(ctx context.Context, channelName string) ([]ApplicationView, error)
	FindByID(ctx context.Context, id string) (*ApplicationView, error)
}

type applicationQueriesImpl struct {
	readStore ApplicationReadStore
}

func NewApplicationQueries(readStore ApplicationReadStore) ApplicationQueries {
	return &applicationQueriesImpl{
		readStore: readStore,
	}
}

func (q *applicationQueriesImpl) ListMine(ctx context.Context, channelName string) ([]ApplicationView, error) {
	views, err := q.readStore.ListByChannel(ctx, channelName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list applications")
	}
	return views, nil
}

func (q *applicationQueriesImpl) GetOwned(ctx context.Context, id, channelName string) (*ApplicationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, errs.Wrap(err, "failed to load application")
	}
	if view.ChannelName == "" || view.ChannelName != channelName {
		return nil, ErrApplicationNotFound
	}
	return view, nil
}
