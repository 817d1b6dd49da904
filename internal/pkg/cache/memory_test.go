package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "dashboard:overview", payload{Name: "overview", Count: 3}, time.Minute))

	var got payload
	hit, err := c.Get(ctx, "dashboard:overview", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "overview", Count: 3}, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	var got payload
	hit, err := c.Get(context.Background(), "nothing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", payload{Name: "gone"}, -time.Second))

	var got payload
	hit, err := c.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheInvalidatePrefix(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "dashboard:overview", payload{Name: "a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "dashboard:detailed", payload{Name: "b"}, time.Minute))
	require.NoError(t, c.Set(ctx, "session:1", payload{Name: "c"}, time.Minute))

	require.NoError(t, c.Invalidate(ctx, "dashboard"))

	var got payload
	hit, _ := c.Get(ctx, "dashboard:overview", &got)
	assert.False(t, hit)
	hit, _ = c.Get(ctx, "dashboard:detailed", &got)
	assert.False(t, hit)
	hit, _ = c.Get(ctx, "session:1", &got)
	assert.True(t, hit, "other prefixes must survive")
}
