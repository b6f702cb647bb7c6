package service

import (
	"context"

	"sokoo/internal/domain/entity"
)

// DirectoryCache caches public directory listings keyed by the serialized
// query. A nil cache (not configured) is valid; the directory usecase treats
// every lookup as a miss.
type DirectoryCache interface {
	// Get returns the cached listing for a key, or (nil, false) on a miss.
	Get(ctx context.Context, key string) ([]*entity.Shop, bool)

	// Set stores a listing under a key with the cache's configured TTL.
	Set(ctx context.Context, key string, shops []*entity.Shop)

	// Invalidate drops every cached listing. Called on any shop mutation
	// that can change public visibility.
	Invalidate(ctx context.Context)
}
