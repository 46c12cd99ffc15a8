package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockoutKeyPrefix = "portal:login_failures:"

// LoginLockout counts failed logins per client inside a fixed window
type LoginLockout struct {
	rdb       *redis.Client
	threshold int
	window    time.Duration
}

func NewLoginLockout(rdb *redis.Client, threshold int, window time.Duration) *LoginLockout {
	return &LoginLockout{rdb: rdb, threshold: threshold, window: window}
}

func (l *LoginLockout) enabled() bool {
	return l.rdb != nil && l.threshold > 0
}

func (l *LoginLockout) IsLocked(ctx context.Context, key string) (bool, error) {
	if !l.enabled() {
		return false, nil
	}

	n, err := l.rdb.Get(ctx, lockoutKeyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= l.threshold, nil
}

func (l *LoginLockout) RecordFailure(ctx context.Context, key string) error {
	if !l.enabled() {
		return nil
	}

	k := lockoutKeyPrefix + key
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return err
	}
	// the window starts at the first failure
	if n == 1 {
		return l.rdb.Expire(ctx, k, l.window).Err()
	}
	return nil
}

func (l *LoginLockout) Reset(ctx context.Context, key string) error {
	if !l.enabled() {
		return nil
	}
	return l.rdb.Del(ctx, lockoutKeyPrefix+key).Err()
}
