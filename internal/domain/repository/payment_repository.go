package repository

import (
	"context"
	"errors"
	"time"

	"sokoo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is a domain-specific error returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrPaymentAlreadySettled signals an idempotent settlement hit: the payment
// was already paid when the settlement attempt arrived. Callers treat it as a
// no-op, not a failure.
var ErrPaymentAlreadySettled = errors.New("payment already settled")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindCurrentByShop retrieves the shop's open (non-terminal) billing cycle.
	FindCurrentByShop(ctx context.Context, shopID uuid.UUID) (*entity.Payment, error)

	// ListByShop retrieves all payments for a shop, newest first by due date.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Payment, error)

	// ListOverdue retrieves all payments whose derived status at the given
	// time is overdue, across shops.
	ListOverdue(ctx context.Context, now time.Time) ([]*entity.Payment, error)

	// Create persists a new payment entity to the storage.
	Create(ctx context.Context, payment *entity.Payment) error

	// Settle atomically marks the payment paid and persists its successor in
	// one transaction. It returns ErrPaymentAlreadySettled if the payment was
	// paid by a concurrent caller; implementations must guarantee at most one
	// settlement (and one successor) per payment ID.
	Settle(ctx context.Context, payment *entity.Payment, successor *entity.Payment) error
}
