// Package cache provides the Redis-backed directory listing cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/service"
)

const (
	defaultTTL = 30 * time.Second
	// keySetName tracks every listing key so Invalidate can drop them
	// without a SCAN.
	keySetName = "directory:keys"
)

// redisDirectoryCache implements the DirectoryCache interface on Redis.
// Listings are stored as JSON with a short TTL; invalidation drops all
// listing keys at once since any shop mutation can change any filter's result.
type redisDirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisClient creates the Redis connection from configuration.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// NewRedisDirectoryCache is the constructor for redisDirectoryCache.
func NewRedisDirectoryCache(client *redis.Client, cfg *config.RedisConfig, logger *slog.Logger) service.DirectoryCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisDirectoryCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached listing for a key, or (nil, false) on a miss.
// Redis errors degrade to misses so the directory stays available.
func (c *redisDirectoryCache) Get(ctx context.Context, key string) ([]*entity.Shop, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Directory cache read failed", "key", key, "error", err)
		}

		return nil, false
	}

	var shops []*entity.Shop
	if err := json.Unmarshal(payload, &shops); err != nil {
		c.logger.Warn("Directory cache entry is corrupt", "key", key, "error", err)

		return nil, false
	}

	return shops, true
}

// Set stores a listing under a key with the cache's configured TTL.
func (c *redisDirectoryCache) Set(ctx context.Context, key string, shops []*entity.Shop) {
	payload, err := json.Marshal(shops)
	if err != nil {
		c.logger.Warn("Directory cache encode failed", "key", key, "error", err)

		return
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, c.ttl)
	pipe.SAdd(ctx, keySetName, key)
	pipe.Expire(ctx, keySetName, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("Directory cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops every cached listing.
func (c *redisDirectoryCache) Invalidate(ctx context.Context) {
	keys, err := c.client.SMembers(ctx, keySetName).Result()
	if err != nil {
		c.logger.Warn("Directory cache invalidation failed", "error", err)

		return
	}

	keys = append(keys, keySetName)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Directory cache invalidation failed", "error", err)
	}
}
