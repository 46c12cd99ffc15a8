package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const channelNamesKey = "portal:channel_names"

type ChannelCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewChannelCache(rdb *redis.Client, ttl time.Duration) *ChannelCache {
	return &ChannelCache{rdb: rdb, ttl: ttl}
}

func (c *ChannelCache) Get(ctx context.Context) ([]string, bool, error) {
	if c.rdb == nil {
		return nil, false, nil
	}

	raw, err := c.rdb.Get(ctx, channelNamesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false, err
	}
	return names, true, nil
}

func (c *ChannelCache) Set(ctx context.Context, names []string) error {
	if c.rdb == nil || c.ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelNamesKey, raw, c.ttl).Err()
}
