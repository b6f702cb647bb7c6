// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sokoo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is a domain-specific error returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ErrShopAlreadyOwned is returned when an owner tries to register a second
// shop. The model allows at most one shop per owner.
var ErrShopAlreadyOwned = errors.New("owner already has a shop")

// ShopQuery narrows a shop listing. Zero values (and the "all" sentinel for
// categorical fields) mean "no constraint".
type ShopQuery struct {
	// Term is matched case-insensitively as a substring against shop name,
	// owner name and city.
	Term string
	// Status filters by lifecycle status ("all" or empty passes everything).
	Status string
	// Industry filters by industry ("all" or empty passes everything).
	Industry string
	// City filters by city ("all" or empty passes everything).
	City string
}

// ShopRepository defines the standard operations for shop persistence.
// List results preserve insertion order so filtering stays stable.
type ShopRepository interface {
	// FindByID retrieves a single shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwner retrieves the shop owned by a user, if any.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// List retrieves shops matching the query, preserving insertion order.
	List(ctx context.Context, query ShopQuery) ([]*entity.Shop, error)

	// Create persists a new shop entity to the storage.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update modifies an existing shop entity in the storage.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop permanently. Admin-only at the usecase layer.
	Delete(ctx context.Context, id uuid.UUID) error
}
