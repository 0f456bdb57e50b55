package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Run("requires url or address", func(t *testing.T) {
		_, err := optionsFromConfig(Config{})
		require.Error(t, err)
	})

	t.Run("address with pool settings", func(t *testing.T) {
		opts, err := optionsFromConfig(Config{
			Address:     "localhost:6379",
			DB:          2,
			PoolSize:    7,
			DialTimeout: time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 7, opts.PoolSize)
		assert.Equal(t, time.Second, opts.DialTimeout)
	})

	t.Run("url wins over address", func(t *testing.T) {
		opts, err := optionsFromConfig(Config{URL: "redis://:secret@cache:6380/3", Address: "ignored:1"})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("malformed url", func(t *testing.T) {
		_, err := optionsFromConfig(Config{URL: "http://not-redis"})
		require.Error(t, err)
	})
}

type fakeStore struct {
	keys map[string]any
	ttl  time.Duration
	err  error
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, taken := f.keys[key]; taken {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = value
	f.ttl = ttl
	return redis.NewBoolResult(true, nil)
}

func TestLeaseGrantsOneOwnerPerName(t *testing.T) {
	store := &fakeStore{keys: map[string]any{}}
	first := &Lease{store: store, owner: "instance-a"}
	second := &Lease{store: store, owner: "instance-b"}

	ok, err := first.Acquire(t.Context(), "stop-sequence-audit", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, store.ttl)
	assert.Equal(t, "instance-a", store.keys["dispatch:lease:stop-sequence-audit"])

	ok, err = second.Acquire(t.Context(), "stop-sequence-audit", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = second.Acquire(t.Context(), "order-drift-audit", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLeasePropagatesStoreErrors(t *testing.T) {
	lease := &Lease{store: &fakeStore{err: errors.New("connection refused")}, owner: "a"}

	ok, err := lease.Acquire(t.Context(), "x", time.Second)
	require.Error(t, err)
	assert.False(t, ok)
}
