package usecase

import (
	"context"

	"sokoo/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterShopInput defines the data required to register a new shop.
// Every required field must be non-empty after trimming; each failure is
// reported under its own field key.
type RegisterShopInput struct {
	Name           string `json:"name" validate:"notblank"`
	Industry       string `json:"industry" validate:"notblank"`
	City           string `json:"city" validate:"notblank"`
	Mall           string `json:"mall" validate:"notblank"`
	ShopNumber     string `json:"shop_number" validate:"notblank"`
	WhatsappNumber string `json:"whatsapp_number" validate:"notblank"`
	Logo           string `json:"logo"`
}

// UpdateShopInput defines the editable shop fields. Nil pointers leave the
// field unchanged.
type UpdateShopInput struct {
	Name           *string `json:"name"`
	Industry       *string `json:"industry"`
	City           *string `json:"city"`
	Mall           *string `json:"mall"`
	ShopNumber     *string `json:"shop_number"`
	WhatsappNumber *string `json:"whatsapp_number"`
	Logo           *string `json:"logo"`
}

// Actor identifies the caller of a role-guarded operation.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// ShopUsecase covers the shop lifecycle: registration, edits, the admin
// approve/reject decisions, and deletion.
type ShopUsecase interface {
	// Register creates a pending shop owned by the actor. An owner may
	// register at most one shop. Billing starts at approval, not registration.
	Register(ctx context.Context, actor Actor, input *RegisterShopInput) (*entity.Shop, error)

	// Get retrieves one shop by ID. Shops that are not active are visible
	// only to an admin or the shop's owner; everyone else gets not-found.
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Shop, error)

	// Update edits shop fields. Owners may edit only their own shop; admins
	// may edit any.
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)

	// Approve transitions a pending shop to active (admin decision) and
	// opens the shop's first billing cycle.
	Approve(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Shop, error)

	// Reject transitions a pending shop to the terminal rejected status,
	// removing it from the awaiting-admin queue permanently.
	Reject(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Shop, error)

	// Delete removes a shop permanently (admin only).
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
