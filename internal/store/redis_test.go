package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := RedisConfig{URL: "redis://" + mr.Addr()}.NewRedisClient(context.Background())
	require.NoError(t, err)
	c := NewRedisCache(client)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "enhanced", time.Minute))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "enhanced", v)
	assert.True(t, mr.Exists(redisKeyPrefix+"k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisConfig_BadURL(t *testing.T) {
	_, err := RedisConfig{URL: "not-a-url"}.NewRedisClient(context.Background())
	assert.Error(t, err)
}
