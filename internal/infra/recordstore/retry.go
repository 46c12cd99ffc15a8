package recordstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sponsor-portal/internal/infra"
)

// readRetryClient retries Find and Select. Writes pass straight through:
// a retried Create could leave a second record behind.
type readRetryClient struct {
	Client
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

func WithReadRetry(c Client, maxRetries int, backoff time.Duration, logger *slog.Logger) Client {
	if maxRetries <= 0 {
		return c
	}
	return &readRetryClient{Client: c, maxRetries: maxRetries, backoff: backoff, logger: logger}
}

func (c *readRetryClient) Find(ctx context.Context, table, id string) (Record, error) {
	return retryRead(ctx, c, "find", table, func() (Record, error) {
		return c.Client.Find(ctx, table, id)
	})
}

func (c *readRetryClient) Select(ctx context.Context, table string, opts SelectOptions) ([]Record, error) {
	return retryRead(ctx, c, "select", table, func() ([]Record, error) {
		return c.Client.Select(ctx, table, opts)
	})
}

func retryRead[T any](ctx context.Context, c *readRetryClient, op, table string, fn func() (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) || attempt == c.maxRetries {
			return zero, err
		}

		// Linear backoff, same shape as the transaction retry loop
		waitTime := time.Duration(attempt+1) * c.backoff
		c.logger.Warn("retrying store read",
			slog.String("operation", op),
			slog.String("table", table),
			slog.Int("attempt", attempt+1),
			slog.Duration("wait_time", waitTime),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return infra.IsKind(err, infra.KindStoreFailure) || infra.IsKind(err, infra.KindRateLimited)
}
