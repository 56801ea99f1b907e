package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrOTPNotFound means no code is pending for the phone (expired or
	// never requested).
	ErrOTPNotFound = errors.New("no pending otp for phone")
	// ErrOTPAttemptsExceeded means the code was burned by too many failed
	// verifications.
	ErrOTPAttemptsExceeded = errors.New("otp attempts exceeded")
)

// OTPCache stores pending one-time codes with a TTL and a failed-attempt
// counter.
type OTPCache interface {
	Store(ctx context.Context, phone, code string) error
	// Verify checks the code. A mismatch counts one attempt; exceeding the
	// attempt limit deletes the code.
	Verify(ctx context.Context, phone, code string) (bool, error)
}

type otpCache struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

// NewOTPCache creates a redis-backed OTP store.
func NewOTPCache(client *redis.Client, ttl time.Duration, maxAttempts int) OTPCache {
	return &otpCache{client: client, ttl: ttl, maxAttempts: maxAttempts}
}

func (c *otpCache) codeKey(phone string) string {
	return fmt.Sprintf("otp:%s:code", phone)
}

func (c *otpCache) attemptsKey(phone string) string {
	return fmt.Sprintf("otp:%s:attempts", phone)
}

func (c *otpCache) Store(ctx context.Context, phone, code string) error {
	if err := c.client.Set(ctx, c.codeKey(phone), code, c.ttl).Err(); err != nil {
		return err
	}
	return c.client.Set(ctx, c.attemptsKey(phone), 0, c.ttl).Err()
}

func (c *otpCache) Verify(ctx context.Context, phone, code string) (bool, error) {
	stored, err := c.client.Get(ctx, c.codeKey(phone)).Result()
	if err == redis.Nil {
		return false, ErrOTPNotFound
	}
	if err != nil {
		return false, err
	}

	if stored == code {
		c.client.Del(ctx, c.codeKey(phone), c.attemptsKey(phone))
		return true, nil
	}

	attempts, err := c.client.Incr(ctx, c.attemptsKey(phone)).Result()
	if err != nil {
		return false, err
	}
	if attempts >= int64(c.maxAttempts) {
		c.client.Del(ctx, c.codeKey(phone), c.attemptsKey(phone))
		return false, ErrOTPAttemptsExceeded
	}
	return false, nil
}
