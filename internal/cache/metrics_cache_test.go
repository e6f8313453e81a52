package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/andresuchdata/dss-backend/internal/cache"
	"github.com/andresuchdata/dss-backend/internal/config"
	"github.com/andresuchdata/dss-backend/internal/generator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*miniredis.Miniredis, cache.MetricsCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewMetricsCache(config.CacheConfig{
		Enabled:           true,
		RedisURL:          "redis://" + mr.Addr(),
		MetricsTTLSeconds: 60,
	})
	require.NoError(t, err)
	return mr, c
}

func TestRedisMetricsCache_SetAndGet(t *testing.T) {
	mr, c := newRedisCache(t)
	ctx := context.Background()

	metrics, err := generator.Generate("Resistor", "2025-09")
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, "Resistor", "2025-09")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "Resistor", "2025-09", metrics))
	assert.True(t, mr.Exists(cache.MetricsKey("Resistor", "2025-09")))

	got, ok, err := c.Get(ctx, "Resistor", "2025-09")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, metrics, got)
}

func TestRedisMetricsCache_Expiration(t *testing.T) {
	mr, c := newRedisCache(t)
	ctx := context.Background()

	metrics, err := generator.Generate("Diode", "2025-02")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "Diode", "2025-02", metrics))

	mr.FastForward(61 * time.Second)

	_, ok, err := c.Get(ctx, "Diode", "2025-02")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMetricsCache_Invalidate(t *testing.T) {
	mr, c := newRedisCache(t)
	ctx := context.Background()

	for _, component := range []string{"Resistor", "Capacitor", "IC"} {
		metrics, err := generator.Generate(component, "2025-09")
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, component, "2025-09", metrics))
	}
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, c.Invalidate(ctx, "Resistor", "2025-09"))
	assert.False(t, mr.Exists(cache.MetricsKey("Resistor", "2025-09")))
	assert.True(t, mr.Exists(cache.MetricsKey("IC", "2025-09")))

	require.NoError(t, c.InvalidateAll(ctx))
	assert.False(t, mr.Exists(cache.MetricsKey("Capacitor", "2025-09")))
	assert.False(t, mr.Exists(cache.MetricsKey("IC", "2025-09")))
	assert.True(t, mr.Exists("unrelated"))
}

func TestRedisMetricsCache_CorruptPayload(t *testing.T) {
	mr, c := newRedisCache(t)
	require.NoError(t, mr.Set(cache.MetricsKey("IC", "2025-09"), "{not json"))

	_, ok, err := c.Get(context.Background(), "IC", "2025-09")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRedisMetricsCache_DefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisMetricsCache(client, 0)
	metrics, err := generator.Generate("IC", "2025-09")
	require.NoError(t, err)
	require.NoError(t, c.Set(context.Background(), "IC", "2025-09", metrics))

	assert.Equal(t, 5*time.Minute, mr.TTL(cache.MetricsKey("IC", "2025-09")))
}

func TestNewMetricsCache_Disabled(t *testing.T) {
	c, err := cache.NewMetricsCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	metrics, err := generator.Generate("IC", "2025-09")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "IC", "2025-09", metrics))

	_, ok, err := c.Get(ctx, "IC", "2025-09")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewMetricsCache_Unreachable(t *testing.T) {
	_, err := cache.NewMetricsCache(config.CacheConfig{Enabled: true, RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.Error(t, err)
}

func TestMetricsKey(t *testing.T) {
	assert.Equal(t, cache.MetricsKey("IC", "2025-09"), cache.MetricsKey("IC", "2025-09"))
	assert.NotEqual(t, cache.MetricsKey("IC", "2025-09"), cache.MetricsKey("IC", "2025-10"))
	assert.Contains(t, cache.MetricsKey("IC", "2025-09"), "metrics:")
}
