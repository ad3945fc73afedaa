package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"blood-bank-backend/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// StatsCache keeps a short-lived JSON snapshot of the dashboard stats in
// Redis so repeated admin dashboard loads don't re-run six counts.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	payload, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats dto.DashboardStatsResponse
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *dto.DashboardStatsResponse) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err()
}
