//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixtures seeds records through any backend, so the same setup serves memstore and pgstore tests
type Fixtures struct {
	client recordstore.Client
	cfg    config.StoreConfig
}

func NewFixtures(client recordstore.Client, cfg config.StoreConfig) *Fixtures {
	return &Fixtures{client: client, cfg: cfg}
}

func (f *Fixtures) CreateInfluencer(t *testing.T, b *builder.InfluencerBuilder) string {
	t.Helper()
	return f.create(t, f.cfg.InfluencerTable, b.BuildFields())
}

func (f *Fixtures) CreateCampaign(t *testing.T, b *builder.CampaignBuilder) string {
	t.Helper()
	return f.create(t, f.cfg.CampaignTable, b.BuildFields())
}

func (f *Fixtures) CreateApplication(t *testing.T, b *builder.ApplicationBuilder) string {
	t.Helper()
	return f.create(t, f.cfg.ApplicationTable, b.BuildFields())
}

func (f *Fixtures) Get(t *testing.T, table, id string) recordstore.Record {
	t.Helper()
	rec, err := f.client.Find(context.Background(), table, id)
	require.NoError(t, err)
	return rec
}

func (f *Fixtures) All(t *testing.T, table string) []recordstore.Record {
	t.Helper()
	recs, err := f.client.Select(context.Background(), table, recordstore.SelectOptions{})
	require.NoError(t, err)
	return recs
}

func (f *Fixtures) create(t *testing.T, table string, fields recordstore.Fields) string {
	t.Helper()
	recs, err := f.client.Create(context.Background(), table, fields)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0].ID
}

// ResetDB empties the records table between e2e cases
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE records RESTART IDENTITY")
	return err
}
