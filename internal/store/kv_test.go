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

func TestStore_SetGet(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "greeting", "hello", 0))

	value, err := s.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_SetWithTTL(t *testing.T) {
	srv, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", "1", 10*time.Second))

	ttl, err := s.TTL(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, ttl)

	srv.FastForward(11 * time.Second)

	_, err = s.Get(ctx, "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_TTL_NoExpiryOrMissing(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "persistent", "v", 0))

	_, err := s.TTL(ctx, "persistent")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.TTL(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Expire(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Expire(ctx, "missing", time.Minute), store.ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	require.NoError(t, s.Expire(ctx, "k", time.Minute))

	ttl, err := s.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)
}

func TestStore_Delete(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	require.NoError(t, s.Delete(ctx, "k"))
	assert.ErrorIs(t, s.Delete(ctx, "k"), store.ErrNotFound)
}

func TestStore_Keys_HidesReserved(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "b", "1", 0))
	require.NoError(t, s.Set(ctx, "a", "1", 0))
	require.NoError(t, s.Enqueue(ctx, "jobs", "x"))
	testutil.SeedCredential(t, s, "deadbeef", "alice", "admin")
	require.NoError(t, s.Enqueue(ctx, store.RequestLogKey, "{}"))

	keys, err := s.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "jobs"}, keys)

	keys, err = s.Keys(ctx, "j*")
	require.NoError(t, err)
	assert.Equal(t, []string{"jobs"}, keys)
}

func TestStore_Keys_Empty(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)

	keys, err := s.Keys(context.Background(), "*")
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestStore_Counters(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	n, err := s.Incr(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Incr(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Decr(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)

	require.NoError(t, s.Set(ctx, "text", "abc", 0))
	_, err = s.Incr(ctx, "text")
	assert.ErrorIs(t, err, store.ErrNotInteger)
}

func TestStore_Hash(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.HSet(ctx, "user:1", "name", "alice"))

	value, err := s.HGet(ctx, "user:1", "name")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	_, err = s.HGet(ctx, "user:1", "email")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.HGet(ctx, "nohash", "name")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_WrongType(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.HSet(ctx, "h", "f", "v"))

	_, err := s.Get(ctx, "h")
	assert.ErrorIs(t, err, store.ErrWrongType)
}

func TestStore_Queue_FIFO(t *testing.T) {
	_, s := testutil.NewMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Enqueue(ctx, "q", "first"))
	require.NoError(t, s.Enqueue(ctx, "q", "second"))

	value, err := s.Dequeue(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, "first", value)

	value, err = s.Dequeue(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	_, err = s.Dequeue(ctx, "q")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Unreachable(t *testing.T) {
	s := testutil.NewUnreachableStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, s.Ping(ctx))
	assert.ErrorIs(t, s.Set(ctx, "k", "v", 0), store.ErrUnavailable)

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = s.CredentialExists(ctx, "k")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = s.Keys(ctx, "*")
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"api_logs", true},
		{"apikey:0123", true},
		{"apikey:", true},
		{"ratelimit:abc", true},
		{"api_logs2", false},
		{"apikeys", false},
		{"user:1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsReserved(tt.key))
		})
	}
}
