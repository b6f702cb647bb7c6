// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager repository.TransactionManager
	cache     service.DirectoryCache
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService. The cache may
// be nil; listings are then always served from storage.
func NewDirectoryService(
	txManager repository.TransactionManager,
	cache service.DirectoryCache,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// ListShops returns shops matching the query, filtered to the viewer's
// visibility, in stable insertion order.
func (srv *directoryService) ListShops(ctx context.Context, query usecase.DirectoryQuery, viewer entity.Role) (*usecase.ShopListOutput, error) {
	// Only admins may look past the public directory.
	if viewer != entity.RoleAdmin {
		query.Status = entity.ShopStatusActive.String()
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	shops, err := srv.fetch(ctx, query, viewer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	total := len(shops)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &usecase.ShopListOutput{
		Shops: shops[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// fetch returns the full filtered listing, going through the cache for
// public (non-admin) queries.
func (srv *directoryService) fetch(ctx context.Context, query usecase.DirectoryQuery, viewer entity.Role) ([]*entity.Shop, error) {
	cacheable := srv.cache != nil && viewer != entity.RoleAdmin
	key := listingCacheKey(query)

	if cacheable {
		if shops, ok := srv.cache.Get(ctx, key); ok {
			return shops, nil
		}
	}

	var shops []*entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShopRepo().List(ctx, repository.ShopQuery{
			Term:     query.Term,
			Status:   query.Status,
			Industry: query.Industry,
			City:     query.City,
		})
		if err != nil {
			return errors.Wrap(err, "failed to query shops")
		}
		shops = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if cacheable {
		srv.cache.Set(ctx, key, shops)
	}

	return shops, nil
}

// listingCacheKey serializes the filter portion of a query. Pagination is
// applied after the cache, so page and limit stay out of the key.
func listingCacheKey(query usecase.DirectoryQuery) string {
	return fmt.Sprintf("directory:%s|%s|%s|%s", query.Term, query.Status, query.Industry, query.City)
}
