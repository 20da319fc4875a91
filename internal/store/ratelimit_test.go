package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvgate/kvgate/internal/store"
	"github.com/kvgate/kvgate/internal/testutil"
)

func TestCheckKeyRateLimit_ExhaustsBurst(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	// One token per minute: the bucket cannot refill within the test.
	for i := 0; i < 2; i++ {
		result, err := s.CheckKeyRateLimit(ctx, "fp", 1, 2)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i)
	}

	result, err := s.CheckKeyRateLimit(ctx, "fp", 1, 2)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Greater(t, result.RetryAfter, time.Duration(0))
}

func TestCheckKeyRateLimit_SeparateBuckets(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	result, err := s.CheckKeyRateLimit(ctx, "fp-a", 1, 1)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = s.CheckKeyRateLimit(ctx, "fp-b", 1, 1)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCheckKeyRateLimit_Disabled(t *testing.T) {
	s := testutil.NewUnreachableStore(t)

	result, err := s.CheckKeyRateLimit(context.Background(), "fp", 0, 10)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(10), result.Remaining)
}

func TestCheckKeyRateLimit_FailsOpen(t *testing.T) {
	s := testutil.NewUnreachableStore(t)

	result, err := s.CheckKeyRateLimit(context.Background(), "fp", 60, 10)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	require.NotNil(t, result)
	assert.True(t, result.Allowed)
}
