package recordstore

import (
	"context"
	"errors"
	"time"

	"sponsor-portal/internal/pkg/metrics"
)

type instrumentedClient struct {
	next Client
}

// Instrument records a latency histogram per operation, table and outcome
func Instrument(c Client) Client {
	return &instrumentedClient{next: c}
}

func (c *instrumentedClient) Find(ctx context.Context, table, id string) (Record, error) {
	start := time.Now()
	r, err := c.next.Find(ctx, table, id)
	observe("find", table, start, err)
	return r, err
}

func (c *instrumentedClient) Select(ctx context.Context, table string, opts SelectOptions) ([]Record, error) {
	start := time.Now()
	r, err := c.next.Select(ctx, table, opts)
	observe("select", table, start, err)
	return r, err
}

func (c *instrumentedClient) Create(ctx context.Context, table string, records ...Fields) ([]Record, error) {
	start := time.Now()
	r, err := c.next.Create(ctx, table, records...)
	observe("create", table, start, err)
	return r, err
}

func (c *instrumentedClient) Update(ctx context.Context, table, id string, fields Fields) (Record, error) {
	start := time.Now()
	r, err := c.next.Update(ctx, table, id, fields)
	observe("update", table, start, err)
	return r, err
}

func (c *instrumentedClient) Destroy(ctx context.Context, table, id string) error {
	start := time.Now()
	err := c.next.Destroy(ctx, table, id)
	observe("destroy", table, start, err)
	return err
}

func observe(op, table string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.ObserveStoreRequest(op, table, outcome, time.Since(start).Seconds())
}
