package usecase

import (
	"context"
	"time"

	"sokoo/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentHistoryOutput is a shop's payment ledger: the single open cycle plus
// the append-only history, newest first.
type PaymentHistoryOutput struct {
	Current *entity.Payment   `json:"current"`
	History []*entity.Payment `json:"history"`
}

// SettlementOutput is the result of settling one payment: the settled record
// and the freshly opened successor cycle.
type SettlementOutput struct {
	Payment   *entity.Payment `json:"payment"`
	Successor *entity.Payment `json:"successor"`
}

// BillingUsecase covers the payment lifecycle: settlement, reminders, and the
// overdue sweep that links payment lapses to shop visibility.
type BillingUsecase interface {
	// History returns a shop's current payment and settled history.
	History(ctx context.Context, actor Actor, shopID uuid.UUID) (*PaymentHistoryOutput, error)

	// Settle marks a payment paid, spawns the next cycle, and reactivates the
	// shop if the settled payment was the one that lapsed it. Settlement is
	// idempotent per payment ID: a repeat attempt returns the already-settled
	// record with a nil successor and no new history entry.
	Settle(ctx context.Context, actor Actor, shopID, paymentID uuid.UUID, method string) (*SettlementOutput, error)

	// Remind records (and, when a sender is configured, dispatches) a payment
	// reminder to the shop owner and returns the history record.
	Remind(ctx context.Context, actor Actor, shopID, paymentID uuid.UUID) (*entity.Reminder, error)

	// ReminderHistory returns a shop's reminder records, newest first.
	ReminderHistory(ctx context.Context, actor Actor, shopID uuid.UUID) ([]*entity.Reminder, error)

	// SweepOverdue deactivates every active shop whose current payment has
	// been overdue longer than the grace period. Returns the number of shops
	// deactivated. Driven by the background sweeper and the admin endpoint.
	SweepOverdue(ctx context.Context, now time.Time) (int, error)
}
