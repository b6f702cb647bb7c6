// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sokoo/internal/domain/entity"
)

// DirectoryQuery narrows a public or back-office shop listing.
type DirectoryQuery struct {
	Term     string `query:"q"`
	Status   string `query:"status"`
	Industry string `query:"industry"`
	City     string `query:"city"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// ShopListOutput is one page of directory results.
type ShopListOutput struct {
	Shops []*entity.Shop `json:"shops"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// DirectoryUsecase lists and searches the shop directory. Anonymous and
// customer callers only ever see active shops; admins may query any status.
type DirectoryUsecase interface {
	// ListShops returns shops matching the query, filtered to the viewer's
	// visibility, in stable insertion order.
	ListShops(ctx context.Context, query DirectoryQuery, viewer entity.Role) (*ShopListOutput, error)
}
