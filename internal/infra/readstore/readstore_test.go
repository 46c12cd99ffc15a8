//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/infra/readstore"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/recordstore/memstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"

	"github.com/stretchr/testify/suite"
)

type ReadStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    config.StoreConfig
	store  *memstore.Store
	logger *slog.Logger
}

func (s *ReadStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = config.NewTestConfig().Store
	s.store = memstore.New(clock.NewRealClock())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	seed := []recordstore.Fields{
		{schema.Influencer.ChannelName: "jane_camp_official", schema.Influencer.Tier: []any{"3"}},
		{schema.Influencer.ChannelName: "jane_camp", schema.Influencer.Tier: []any{"2"}},
		{schema.Influencer.ChannelName: []any{"bob", "bob_alt"}},
		{schema.Influencer.ChannelName: "  bob "},
		{},
	}
	for _, f := range seed {
		_, err := s.store.Seed(s.cfg.InfluencerTable, "", f)
		s.Require().NoError(err)
	}
}

func TestReadStoreSuite(t *testing.T) {
	suite.Run(t, new(ReadStoreTestSuite))
}

func (s *ReadStoreTestSuite) TestFindByChannelNameContains() {
	r := readstore.NewInfluencerReadStore(s.store, s.cfg, s.logger)

	// substring match takes the first record in store order
	v, err := r.FindByChannelName(s.ctx, "jane_camp", false)
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal("jane_camp_official", v.ChannelName)
	s.Equal("3", v.Tier)
}

func (s *ReadStoreTestSuite) TestFindByChannelNameExact() {
	r := readstore.NewInfluencerReadStore(s.store, s.cfg, s.logger)

	v, err := r.FindByChannelName(s.ctx, "jane_camp", true)
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal("jane_camp", v.ChannelName)
	s.Equal(tier.Partner.String(), v.Tier)

	none, err := r.FindByChannelName(s.ctx, "jane", true)
	s.Require().NoError(err)
	s.Nil(none)
}

func (s *ReadStoreTestSuite) TestFindByChannelNameStoreError() {
	r := readstore.NewInfluencerReadStore(s.store, s.cfg, s.logger)
	s.store.InjectFailure(memstore.OpSelect, s.cfg.InfluencerTable, errors.New("down"), 1)

	_, err := r.FindByChannelName(s.ctx, "jane", false)
	s.Error(err)
}

func (s *ReadStoreTestSuite) TestListChannelNames() {
	r := readstore.NewInfluencerReadStore(s.store, s.cfg, s.logger)

	names, err := r.ListChannelNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"bob", "bob_alt", "jane_camp", "jane_camp_official"}, names)
}

func (s *ReadStoreTestSuite) TestCampaignListAllKeepsStoreOrder() {
	for _, id := range []string{"recB", "recA", "recC"} {
		_, err := s.store.Seed(s.cfg.CampaignTable, id, recordstore.Fields{schema.Campaign.AccommodationName: id})
		s.Require().NoError(err)
	}

	r := readstore.NewCampaignReadStore(s.store, s.cfg, s.logger)
	got, err := r.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("recB", got[0].ID)
	s.Equal("recA", got[1].ID)
	s.Equal("recC", got[2].ID)
}

func (s *ReadStoreTestSuite) TestApplicationsByChannel() {
	for _, ch := range []string{"jane_camp", "jane_camp_official", "jane_camp"} {
		_, err := s.store.Seed(s.cfg.ApplicationTable, "", recordstore.Fields{
			schema.Application.ChannelName:       ch,
			schema.Application.AccommodationName: []any{"솔숲 캠핑장"},
		})
		s.Require().NoError(err)
	}

	r := readstore.NewApplicationReadStore(s.store, s.cfg, s.logger)
	got, err := r.ListByChannel(s.ctx, "jane_camp")
	s.Require().NoError(err)
	s.Len(got, 2)
	for _, v := range got {
		s.Equal("jane_camp", v.ChannelName)
		s.Equal("솔숲 캠핑장", v.AccommodationName)
	}

	_, err = r.FindByID(s.ctx, "recNope")
	s.ErrorIs(err, recordstore.ErrNotFound)
}
