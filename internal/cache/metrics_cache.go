package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"deepmirror/internal/model"
)

// MetricsCache keeps computed composite metrics per session so repeat
// dashboard reads skip recomputation. Metrics are pure functions of the
// session, so entries are dropped whenever answers or profile change.
type MetricsCache interface {
	Set(ctx context.Context, sessionID string, metrics *model.CompositeMetrics) error
	Get(ctx context.Context, sessionID string) (*model.CompositeMetrics, error)
	Delete(ctx context.Context, sessionID string) error
}

type metricsCache struct {
	client *redis.Client
}

// NewMetricsCache creates a Redis-backed metrics cache.
func NewMetricsCache(client *redis.Client) MetricsCache {
	return &metricsCache{
		client: client,
	}
}

func (c *metricsCache) Set(ctx context.Context, sessionID string, metrics *model.CompositeMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "metrics:"+sessionID, data, 10*time.Minute).Err()
}

func (c *metricsCache) Get(ctx context.Context, sessionID string) (*model.CompositeMetrics, error) {
	data, err := c.client.Get(ctx, "metrics:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var metrics model.CompositeMetrics
	if err := json.Unmarshal([]byte(data), &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (c *metricsCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "metrics:"+sessionID).Err()
}
