package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/agentcard/internal/config"
)

func newTestCache(t *testing.T) (*AssetCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedis(config.CacheConfig{Address: mr.Addr(), TTL: time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestAssetCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "https://cdn.example.com/a.png", []byte{1, 2, 3}))
	b, ok, err := c.Get(ctx, "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestAssetCache_Expires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u", []byte("x")))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "u")
	require.NoError(t, err)
	assert.False(t, ok)
}
