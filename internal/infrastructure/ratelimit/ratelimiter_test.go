package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func runLimiterTests(t *testing.T, name string, newLimiter func(t *testing.T) RateLimiter) {
	ctx := context.Background()

	t.Run(name+"/per minute", func(t *testing.T) {
		limiter := newLimiter(t)
		config := RateLimitConfig{RequestsPerMinute: 5}

		for i := 0; i < 5; i++ {
			allowed, err := limiter.Allow(ctx, "login:10.0.0.1", config)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, err := limiter.Allow(ctx, "login:10.0.0.1", config)
		require.NoError(t, err)
		assert.False(t, allowed, "6th request should be denied")

		allowed, err = limiter.Allow(ctx, "login:10.0.0.2", config)
		require.NoError(t, err)
		assert.True(t, allowed, "other keys are independent")
	})

	t.Run(name+"/hour window binds first", func(t *testing.T) {
		limiter := newLimiter(t)
		config := RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 3}

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "k", config)
			require.NoError(t, err)
			assert.True(t, allowed)
		}
		allowed, err := limiter.Allow(ctx, "k", config)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run(name+"/reset", func(t *testing.T) {
		limiter := newLimiter(t)
		config := RateLimitConfig{RequestsPerMinute: 1}

		allowed, err := limiter.Allow(ctx, "r", config)
		require.NoError(t, err)
		require.True(t, allowed)
		allowed, err = limiter.Allow(ctx, "r", config)
		require.NoError(t, err)
		require.False(t, allowed)

		require.NoError(t, limiter.Reset(ctx, "r"))
		allowed, err = limiter.Allow(ctx, "r", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestMemoryRateLimiter(t *testing.T) {
	runLimiterTests(t, "memory", func(t *testing.T) RateLimiter { return NewMemoryRateLimiter() })
}

func TestRedisRateLimiter(t *testing.T) {
	runLimiterTests(t, "redis", func(t *testing.T) RateLimiter { return NewRedisRateLimiter(setupTestRedis(t)) })
}

func TestMemoryRateLimiter_Refills(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	limiter := NewMemoryRateLimiter()
	limiter.now = func() time.Time { return now }
	config := RateLimitConfig{RequestsPerMinute: 2}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k", config)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow(ctx, "k", config)
	require.False(t, allowed)

	now = now.Add(30 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k", config)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_NoLimits(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(context.Background(), "k", RateLimitConfig{})
		require.NoError(t, err)
		require.True(t, allowed)
	}
}

func TestMemoryRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	limiter := NewMemoryRateLimiter()
	limiter.now = func() time.Time { return now }
	config := RateLimitConfig{RequestsPerMinute: 1, RequestsPerHour: 10}
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := limiter.Allow(ctx, "login:"+ip, config)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, limiter.Len())

	now = now.Add(30 * time.Minute)
	_, err := limiter.Allow(ctx, "login:10.0.0.1", config)
	require.NoError(t, err)
	assert.Equal(t, 3, limiter.Len(), "keys younger than an hour stay")

	now = now.Add(31 * time.Minute)
	_, err = limiter.Allow(ctx, "login:10.0.0.9", config)
	require.NoError(t, err)
	assert.Equal(t, 2, limiter.Len(), "only the recently used key and the new one remain")
}

func TestMemoryRateLimiter_EvictionKeepsActiveLimits(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	limiter := NewMemoryRateLimiter()
	limiter.now = func() time.Time { return now }
	config := RateLimitConfig{RequestsPerMinute: 1}
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "k", config)
	require.NoError(t, err)
	require.True(t, allowed)

	now = now.Add(2 * time.Second)
	allowed, err = limiter.Allow(ctx, "k", config)
	require.NoError(t, err)
	assert.False(t, allowed)
}
