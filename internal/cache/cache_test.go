package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCachePanicsWhenUnset(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "auth:token:abc") })
	require.Panics(t, func() { c.Set(context.Background(), "auth:token:abc", "payload", 0) })
	require.NoError(t, c.Close())
}

func TestFakeCacheDispatch(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}

	var gotGetKey, gotSetKey string
	var gotTTL time.Duration
	c.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		gotGetKey = key
		return redis.NewStringResult(`{"user_id":1}`, nil)
	}
	c.SetFn = func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
		gotSetKey = key
		gotTTL = ttl
		return redis.NewStatusResult("OK", nil)
	}
	c.CloseFn = func() error { return errors.New("already closed") }

	require.Equal(t, `{"user_id":1}`, c.Get(ctx, "auth:token:abc").Val())
	require.Equal(t, "auth:token:abc", gotGetKey)

	require.Equal(t, "OK", c.Set(ctx, "auth:token:def", []byte("payload"), 0).Val())
	require.Equal(t, "auth:token:def", gotSetKey)
	require.Zero(t, gotTTL)

	require.EqualError(t, c.Close(), "already closed")
}
