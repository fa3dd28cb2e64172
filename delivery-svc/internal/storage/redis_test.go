package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodndeliv/delivery-svc/internal/domain"
)

func setupMenuCache(t *testing.T) (*RedisMenuCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisMenuCache(client, time.Minute), mr
}

func TestRedisMenuCache_RoundTrip(t *testing.T) {
	cache, mr := setupMenuCache(t)
	ctx := context.Background()

	_, ok, err := cache.GetMenu(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	menu := []domain.MenuItem{
		{ID: 10, RestaurantID: 2, ProductName: "Pizza", Price: 5.0, IsAvailable: true},
		{ID: 11, RestaurantID: 2, ProductName: "Soup", Price: 4.5, IsAvailable: false},
	}
	require.NoError(t, cache.SetMenu(ctx, 2, menu))
	assert.True(t, mr.Exists("menu:2"))
	assert.Equal(t, time.Minute, mr.TTL("menu:2"))

	got, ok, err := cache.GetMenu(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, menu, got)
}

func TestRedisMenuCache_EmptyMenuIsAHit(t *testing.T) {
	cache, _ := setupMenuCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMenu(ctx, 3, nil))

	got, ok, err := cache.GetMenu(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRedisMenuCache_Invalidate(t *testing.T) {
	cache, mr := setupMenuCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMenu(ctx, 2, []domain.MenuItem{{ID: 10}}))
	require.NoError(t, cache.InvalidateMenu(ctx, 2))
	assert.False(t, mr.Exists("menu:2"))

	_, ok, err := cache.GetMenu(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMenuCache_Expiry(t *testing.T) {
	cache, mr := setupMenuCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMenu(ctx, 2, []domain.MenuItem{{ID: 10}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.GetMenu(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMenuCache_CorruptValue(t *testing.T) {
	cache, mr := setupMenuCache(t)
	require.NoError(t, mr.Set("menu:2", "not json"))

	_, ok, err := cache.GetMenu(context.Background(), 2)
	assert.Error(t, err)
	assert.False(t, ok)
}
