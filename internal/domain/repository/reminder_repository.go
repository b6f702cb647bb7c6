package repository

import (
	"context"

	"sokoo/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderRepository defines the operations for reminder-history persistence.
type ReminderRepository interface {
	// Create appends a reminder record to the shop's history.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// ListByShop retrieves a shop's reminder history, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Reminder, error)
}
