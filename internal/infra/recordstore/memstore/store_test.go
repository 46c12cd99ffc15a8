//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/recordstore/memstore"
	"sponsor-portal/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New(clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestCreateFindRoundTrip() {
	created, err := s.store.Create(s.ctx, "applications", recordstore.Fields{
		"email": "a@example.com",
		"links": []string{"recA"},
	})
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Len(created[0].ID, 17)
	s.Equal("rec", created[0].ID[:3])

	got, err := s.store.Find(s.ctx, "applications", created[0].ID)
	s.Require().NoError(err)
	s.Equal("a@example.com", got.Fields["email"])
	// stored in the decoded-JSON shape
	s.Equal([]any{"recA"}, got.Fields["links"])
	s.Equal(2025, got.CreatedTime.Year())
}

func (s *StoreTestSuite) TestFindMissing() {
	_, err := s.store.Find(s.ctx, "applications", "recNope")
	s.ErrorIs(err, recordstore.ErrNotFound)

	_, err = s.store.Find(s.ctx, "no_such_table", "recNope")
	s.ErrorIs(err, recordstore.ErrNotFound)
}

func (s *StoreTestSuite) TestSelectFilterSortLimitProject() {
	for _, name := range []string{"charlie", "alpha", "bravo", "alpha_two"} {
		_, err := s.store.Seed("influencers", "", recordstore.Fields{"channel": name, "phone": "010"})
		s.Require().NoError(err)
	}

	got, err := s.store.Select(s.ctx, "influencers", recordstore.SelectOptions{
		Filter: recordstore.Contains("channel", "a"),
		Sort:   []recordstore.Sort{{Field: "channel", Desc: true}},
		Fields: []string{"channel"},
	})
	s.Require().NoError(err)
	var names []string
	for _, r := range got {
		names = append(names, recordstore.Text(r.Fields, "channel"))
		s.NotContains(r.Fields, "phone")
	}
	s.Equal([]string{"charlie", "bravo", "alpha_two", "alpha"}, names)

	limited, err := s.store.Select(s.ctx, "influencers", recordstore.SelectOptions{MaxRecords: 2})
	s.Require().NoError(err)
	s.Require().Len(limited, 2)
	// insertion order without a sort
	s.Equal("charlie", limited[0].Fields["channel"])
}

func (s *StoreTestSuite) TestUpdateMergesAndClears() {
	rec, err := s.store.Seed("applications", "recApp", recordstore.Fields{
		"입실일":    "2025-08-01",
		"입실 사이트": "A-3",
		"email":  "a@example.com",
	})
	s.Require().NoError(err)

	updated, err := s.store.Update(s.ctx, "applications", rec.ID, recordstore.Fields{
		"예약 취소/변경": "변경",
		"입실일":      nil,
		"입실 사이트":   nil,
	})
	s.Require().NoError(err)
	s.Equal("변경", updated.Fields["예약 취소/변경"])
	s.NotContains(updated.Fields, "입실일")
	s.NotContains(updated.Fields, "입실 사이트")
	s.Equal("a@example.com", updated.Fields["email"])

	_, err = s.store.Update(s.ctx, "applications", "recNope", recordstore.Fields{"a": "b"})
	s.ErrorIs(err, recordstore.ErrNotFound)
}

func (s *StoreTestSuite) TestDestroy() {
	rec, err := s.store.Seed("applications", "", recordstore.Fields{"email": "x"})
	s.Require().NoError(err)

	s.Require().NoError(s.store.Destroy(s.ctx, "applications", rec.ID))
	s.Equal(0, s.store.Count("applications"))

	s.ErrorIs(s.store.Destroy(s.ctx, "applications", rec.ID), recordstore.ErrNotFound)
}

func (s *StoreTestSuite) TestReturnedRecordsAreCopies() {
	rec, err := s.store.Seed("campaigns", "recX", recordstore.Fields{"links": []any{"recA"}})
	s.Require().NoError(err)

	rec.Fields["links"].([]any)[0] = "mutated"

	got, err := s.store.Find(s.ctx, "campaigns", "recX")
	s.Require().NoError(err)
	s.Equal([]any{"recA"}, got.Fields["links"])
}

func (s *StoreTestSuite) TestInjectFailure() {
	boom := errors.New("boom")
	s.store.InjectFailure(memstore.OpUpdate, "campaigns", boom, 1)
	_, err := s.store.Seed("campaigns", "recX", recordstore.Fields{})
	s.Require().NoError(err)

	_, err = s.store.Update(s.ctx, "campaigns", "recX", recordstore.Fields{"a": "b"})
	s.ErrorIs(err, boom)

	_, err = s.store.Update(s.ctx, "campaigns", "recX", recordstore.Fields{"a": "b"})
	s.NoError(err)

	s.store.InjectFailure(memstore.OpSelect, "campaigns", boom, -1)
	for range 3 {
		_, err = s.store.Select(s.ctx, "campaigns", recordstore.SelectOptions{})
		s.ErrorIs(err, boom)
	}
	s.store.ClearFailures()
	_, err = s.store.Select(s.ctx, "campaigns", recordstore.SelectOptions{})
	s.NoError(err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"influencers": [{"id": "recInf1", "fields": {"크리에이터 채널명": "jane_camp"}}],
		"campaigns": [{"id": "recCamp1", "fields": {"쿠폰코드": "CAMP-ABC123"}}, {"fields": {}}]
	}`), 0o600))

	store := memstore.New(clock.NewRealClock())
	require.NoError(t, store.LoadSeedFile(path))

	assert.Equal(t, 1, store.Count("influencers"))
	assert.Equal(t, 2, store.Count("campaigns"))

	rec, err := store.Find(context.Background(), "campaigns", "recCamp1")
	require.NoError(t, err)
	assert.Equal(t, "CAMP-ABC123", rec.Fields["쿠폰코드"])

	assert.Error(t, store.LoadSeedFile(filepath.Join(t.TempDir(), "missing.json")))
}
