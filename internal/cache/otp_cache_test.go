package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPCache_VerifyRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	otp := NewOTPCache(client, 5*time.Minute, 3)
	ctx := context.Background()

	require.NoError(t, otp.Store(ctx, "9999900010", "482913"))

	ok, err := otp.Verify(ctx, "9999900010", "482913")
	require.NoError(t, err)
	assert.True(t, ok)

	// The code is single-use.
	_, err = otp.Verify(ctx, "9999900010", "482913")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPCache_Expiry(t *testing.T) {
	mr, client := newTestRedis(t)
	otp := NewOTPCache(client, 5*time.Minute, 3)
	ctx := context.Background()

	require.NoError(t, otp.Store(ctx, "9999900011", "111222"))
	mr.FastForward(6 * time.Minute)

	_, err := otp.Verify(ctx, "9999900011", "111222")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPCache_AttemptsBurnCode(t *testing.T) {
	_, client := newTestRedis(t)
	otp := NewOTPCache(client, 5*time.Minute, 3)
	ctx := context.Background()

	require.NoError(t, otp.Store(ctx, "9999900012", "654321"))

	for i := 0; i < 2; i++ {
		ok, err := otp.Verify(ctx, "9999900012", "000000")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	// Third failure exceeds the limit and burns the code.
	_, err := otp.Verify(ctx, "9999900012", "000000")
	assert.ErrorIs(t, err, ErrOTPAttemptsExceeded)

	_, err = otp.Verify(ctx, "9999900012", "654321")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}
