package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a windowed request counter. Allow reports whether the key
// is still under its limit for the current window and consumes one slot.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// redisRateLimiter counts hits per key in redis, suitable for multi-instance
// deployments.
type redisRateLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

// NewRedisRateLimiter creates a redis-backed windowed rate limiter.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	return &redisRateLimiter{client: client, window: window, max: max}
}

func (l *redisRateLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.max), nil
}

func (l *redisRateLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

// memoryRateLimiter keeps windowed counters in process memory. Counters do
// not survive restarts and are not shared across instances, so it is only
// suitable for single-instance deployments and tests.
type memoryRateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	counts  map[string]int
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryRateLimiter creates an in-process windowed rate limiter.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	return &memoryRateLimiter{
		window:  window,
		max:     max,
		counts:  make(map[string]int),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.expires[key]; !ok || now.After(exp) {
		l.counts[key] = 0
		l.expires[key] = now.Add(l.window)
	}
	l.counts[key]++
	return l.counts[key] <= l.max, nil
}

func (l *memoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.counts, key)
	delete(l.expires, key)
	return nil
}
