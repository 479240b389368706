// Package cache implements adapter.DashboardCache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmx/ledger-backend/internal/application/adapter"
)

type redisDashboardCache struct {
	client *redis.Client
}

// NewRedisDashboardCache creates a dashboard cache storing JSON values in Redis.
func NewRedisDashboardCache(client *redis.Client) adapter.DashboardCache {
	return &redisDashboardCache{client: client}
}

func (c *redisDashboardCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
