package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andresuchdata/dss-backend/internal/config"
	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	metricsKeyPrefix     = "metrics:"
	metricsScanBatchSize = 100
)

// MetricsCache stores generated payloads keyed by their inputs. Payloads are
// deterministic, so a hit is always identical to a fresh generation.
type MetricsCache interface {
	Get(ctx context.Context, component, month string) (*domain.MetricsResponse, bool, error)
	Set(ctx context.Context, component, month string, metrics *domain.MetricsResponse) error
	Invalidate(ctx context.Context, component, month string) error
	InvalidateAll(ctx context.Context) error
}

type redisMetricsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopMetricsCache struct{}

// NewMetricsCache returns a redis backed cache, or a noop one when caching is disabled.
func NewMetricsCache(cfg config.CacheConfig) (MetricsCache, error) {
	if !cfg.Enabled {
		return &noopMetricsCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisMetricsCache(client, ttl), nil
}

// NewRedisMetricsCache wraps an existing client.
func NewRedisMetricsCache(client *redis.Client, ttl time.Duration) MetricsCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &redisMetricsCache{client: client, ttl: ttl}
}

func NewNoopMetricsCache() MetricsCache {
	return &noopMetricsCache{}
}

func (c *redisMetricsCache) Get(ctx context.Context, component, month string) (*domain.MetricsResponse, bool, error) {
	payload, err := c.client.Get(ctx, MetricsKey(component, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var metrics domain.MetricsResponse
	if err := json.Unmarshal(payload, &metrics); err != nil {
		return nil, false, fmt.Errorf("decode metrics cache: %w", err)
	}

	return &metrics, true, nil
}

func (c *redisMetricsCache) Set(ctx context.Context, component, month string, metrics *domain.MetricsResponse) error {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("encode metrics cache: %w", err)
	}

	if err := c.client.Set(ctx, MetricsKey(component, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisMetricsCache) Invalidate(ctx context.Context, component, month string) error {
	return c.client.Del(ctx, MetricsKey(component, month)).Err()
}

func (c *redisMetricsCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, metricsKeyPrefix, metricsScanBatchSize)
}

func (n *noopMetricsCache) Get(ctx context.Context, component, month string) (*domain.MetricsResponse, bool, error) {
	return nil, false, nil
}

func (n *noopMetricsCache) Set(ctx context.Context, component, month string, metrics *domain.MetricsResponse) error {
	return nil
}

func (n *noopMetricsCache) Invalidate(ctx context.Context, component, month string) error {
	return nil
}

func (n *noopMetricsCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// MetricsKey hashes the inputs so arbitrary component text stays a safe key.
// Callers pass already normalized values.
func MetricsKey(component, month string) string {
	sum := sha1.Sum([]byte(component + "|" + month))
	return metricsKeyPrefix + hex.EncodeToString(sum[:])
}
