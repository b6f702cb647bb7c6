package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/service"
)

func newTestCache(t *testing.T) (service.DirectoryCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.RedisConfig{TTL: time.Minute}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRedisDirectoryCache(client, cfg, logger), server
}

func sampleListing() []*entity.Shop {
	return []*entity.Shop{
		{ID: uuid.New(), Name: "Fashion Hub", Status: entity.ShopStatusActive},
		{ID: uuid.New(), Name: "Tech World", Status: entity.ShopStatusActive},
	}
}

func TestRedisDirectoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	key := "directory:|active||"
	_, ok := cache.Get(ctx, key)
	assert.False(t, ok, "empty cache misses")

	listing := sampleListing()
	cache.Set(ctx, key, listing)

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, listing[0].ID, got[0].ID)
	assert.Equal(t, "Fashion Hub", got[0].Name)
}

func TestRedisDirectoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	cache.Set(ctx, "directory:a", sampleListing())
	cache.Set(ctx, "directory:b", sampleListing())

	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx, "directory:a")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "directory:b")
	assert.False(t, ok)
}

func TestRedisDirectoryCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestCache(t)

	cache.Set(ctx, "directory:a", sampleListing())
	server.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "directory:a")
	assert.False(t, ok)
}

func TestRedisDirectoryCache_SurvivesServerLoss(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestCache(t)
	server.Close()

	// Reads and writes degrade to misses instead of failing the request.
	cache.Set(ctx, "directory:a", sampleListing())
	_, ok := cache.Get(ctx, "directory:a")
	assert.False(t, ok)
	cache.Invalidate(ctx)
}
