package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRateLimiter_AllowsUpToMax(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "phone:9999900001")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := limiter.Allow(ctx, "phone:9999900001")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys are unaffected.
	ok, err = limiter.Allow(ctx, "phone:9999900002")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimiter_WindowResets(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 1)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = limiter.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, time.Minute, 1)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "phone:9999900003")
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "phone:9999900003"))

	ok, err := limiter.Allow(ctx, "phone:9999900003")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryRateLimiter(t *testing.T) {
	limiter := NewMemoryRateLimiter(time.Minute, 2)
	ctx := context.Background()

	ok, _ := limiter.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = limiter.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = limiter.Allow(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, limiter.Reset(ctx, "k"))
	ok, _ = limiter.Allow(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewMemoryRateLimiter(time.Minute, 1).(*memoryRateLimiter)
	now := time.Now()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := limiter.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = limiter.Allow(ctx, "k")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = limiter.Allow(ctx, "k")
	assert.True(t, ok)
}
