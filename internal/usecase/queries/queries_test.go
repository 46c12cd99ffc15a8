//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/usecase/queries"
	"sponsor-portal/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCampaignReadStore struct {
	mock.Mock
}

func (m *MockCampaignReadStore) ListAll(ctx context.Context) ([]*campaign.Campaign, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*campaign.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockApplicationReadStore struct {
	mock.Mock
}

func (m *MockApplicationReadStore) ListByChannel(ctx context.Context, channelName string) ([]queries.ApplicationView, error) {
	args := m.Called(ctx, channelName)
	if v := args.Get(0); v != nil {
		return v.([]queries.ApplicationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationReadStore) FindByID(ctx context.Context, id string) (*queries.ApplicationView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ApplicationView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChannelReadStore struct {
	mock.Mock
}

func (m *MockChannelReadStore) ListChannelNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChannelCache struct {
	mock.Mock
}

func (m *MockChannelCache) Get(ctx context.Context) ([]string, bool, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockChannelCache) Set(ctx context.Context, names []string) error {
	return m.Called(ctx, names).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListCampaigns(t *testing.T) {
	ctx := context.Background()
	open := builder.NewCampaignBuilder().WithID("recOpen").BuildDomain()
	noTerms := builder.NewCampaignBuilder().WithID("recBare").WithoutTerms(tier.Partner).BuildDomain()
	free := builder.NewCampaignBuilder().WithID("recFree").
		WithTerms(tier.Partner, campaign.Terms{Price: 0, Total: 4, Available: 1}).BuildDomain()

	readStore := new(MockCampaignReadStore)
	readStore.On("ListAll", ctx).Return([]*campaign.Campaign{open, noTerms, free}, nil)

	got := queries.NewCampaignQueries(readStore, discardLogger()).ListCampaigns(ctx, tier.Partner)

	want := []queries.CampaignView{
		{
			ID:                "recOpen",
			AccommodationName: open.AccommodationName,
			Location:          open.Location,
			Deadline:          open.Deadline,
			DetailURL:         open.DetailURL,
			ApplicationURL:    open.ApplicationURL,
			Features:          open.Features,
			Price:             80000,
			TotalCount:        5,
			AvailableCount:    2,
			IsClosed:          false,
		},
		{
			ID:                "recBare",
			AccommodationName: noTerms.AccommodationName,
			Location:          noTerms.Location,
			Deadline:          noTerms.Deadline,
			DetailURL:         noTerms.DetailURL,
			ApplicationURL:    noTerms.ApplicationURL,
			Features:          noTerms.Features,
			IsClosed:          true,
		},
		{
			ID:                "recFree",
			AccommodationName: free.AccommodationName,
			Location:          free.Location,
			Deadline:          free.Deadline,
			DetailURL:         free.DetailURL,
			ApplicationURL:    free.ApplicationURL,
			Features:          free.Features,
			Price:             0,
			TotalCount:        4,
			AvailableCount:    1,
			IsClosed:          false,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListCampaigns() mismatch (-want +got):\n%s", diff)
	}
}

func TestListCampaignsProjectsPerTier(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCampaignBuilder().BuildDomain()
	readStore := new(MockCampaignReadStore)
	readStore.On("ListAll", ctx).Return([]*campaign.Campaign{c}, nil)
	q := queries.NewCampaignQueries(readStore, discardLogger())

	icon := q.ListCampaigns(ctx, tier.Icon)
	rising := q.ListCampaigns(ctx, tier.Rising)

	require.Len(t, icon, 1)
	require.Len(t, rising, 1)
	assert.Equal(t, 150000, icon[0].Price)
	assert.False(t, icon[0].IsClosed)
	assert.Equal(t, 30000, rising[0].Price)
	assert.True(t, rising[0].IsClosed, "no seats left for the rising tier")
}

func TestListCampaignsDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	readStore := new(MockCampaignReadStore)
	readStore.On("ListAll", ctx).Return(nil, errors.New("store unavailable"))

	var got []queries.CampaignView
	assert.NotPanics(t, func() {
		got = queries.NewCampaignQueries(readStore, discardLogger()).ListCampaigns(ctx, tier.Icon)
	})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetOwned(t *testing.T) {
	ctx := context.Background()
	mine := builder.NewApplicationBuilder().WithID("recMine").WithChannelName("jane_camp").BuildView()
	unnamed := builder.NewApplicationBuilder().WithID("recUnnamed").WithChannelName("").BuildView()
	notFound := infra.NewRepoErr(infra.KindNotFound, "record not found", recordstore.ErrNotFound)

	tests := []struct {
		name     string
		id       string
		channel  string
		view     *queries.ApplicationView
		storeErr error
		wantErr  error
		wantAny  bool
	}{
		{name: "owner", id: "recMine", channel: "jane_camp", view: &mine},
		{name: "other channel", id: "recMine", channel: "bob", view: &mine, wantErr: queries.ErrApplicationNotFound},
		{name: "record without channel", id: "recUnnamed", channel: "", view: &unnamed, wantErr: queries.ErrApplicationNotFound},
		{name: "missing", id: "recNope", channel: "jane_camp", storeErr: notFound, wantErr: queries.ErrApplicationNotFound},
		{name: "store failure", id: "recMine", channel: "jane_camp", storeErr: errors.New("store unavailable"), wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readStore := new(MockApplicationReadStore)
			readStore.On("FindByID", ctx, tt.id).Return(tt.view, tt.storeErr)

			got, err := queries.NewApplicationQueries(readStore).GetOwned(ctx, tt.id, tt.channel)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantAny:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, queries.ErrApplicationNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, "recMine", got.ID)
			}
		})
	}
}

func TestListMine(t *testing.T) {
	ctx := context.Background()
	views := []queries.ApplicationView{
		builder.NewApplicationBuilder().WithID("recA").BuildView(),
		builder.NewApplicationBuilder().WithID("recB").AsDepositConfirmed().BuildView(),
	}
	readStore := new(MockApplicationReadStore)
	readStore.On("ListByChannel", ctx, "jane_camp").Return(views, nil)
	readStore.On("ListByChannel", ctx, "broken").Return(nil, errors.New("store unavailable"))
	q := queries.NewApplicationQueries(readStore)

	got, err := q.ListMine(ctx, "jane_camp")
	require.NoError(t, err)
	assert.Equal(t, views, got)

	_, err = q.ListMine(ctx, "broken")
	assert.Error(t, err)
}

func TestListChannelNames(t *testing.T) {
	ctx := context.Background()
	names := []string{"bob", "jane_camp"}

	t.Run("cache hit skips the store", func(t *testing.T) {
		readStore := new(MockChannelReadStore)
		cache := new(MockChannelCache)
		cache.On("Get", ctx).Return(names, true, nil)

		got, err := queries.NewChannelQueries(readStore, cache, discardLogger()).ListChannelNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, names, got)
		readStore.AssertNotCalled(t, "ListChannelNames", mock.Anything)
	})

	t.Run("miss reads the store and fills the cache", func(t *testing.T) {
		readStore := new(MockChannelReadStore)
		readStore.On("ListChannelNames", ctx).Return(names, nil)
		cache := new(MockChannelCache)
		cache.On("Get", ctx).Return(nil, false, nil)
		cache.On("Set", ctx, names).Return(nil)

		got, err := queries.NewChannelQueries(readStore, cache, discardLogger()).ListChannelNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, names, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall through to the store", func(t *testing.T) {
		readStore := new(MockChannelReadStore)
		readStore.On("ListChannelNames", ctx).Return(names, nil)
		cache := new(MockChannelCache)
		cache.On("Get", ctx).Return(nil, false, errors.New("redis down"))
		cache.On("Set", ctx, names).Return(errors.New("redis down"))

		got, err := queries.NewChannelQueries(readStore, cache, discardLogger()).ListChannelNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, names, got)
	})

	t.Run("store failure is returned and nothing is cached", func(t *testing.T) {
		readStore := new(MockChannelReadStore)
		readStore.On("ListChannelNames", ctx).Return(nil, errors.New("store unavailable"))
		cache := new(MockChannelCache)
		cache.On("Get", ctx).Return(nil, false, nil)

		_, err := queries.NewChannelQueries(readStore, cache, discardLogger()).ListChannelNames(ctx)
		assert.Error(t, err)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}
