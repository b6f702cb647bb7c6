package service

import (
	"context"

	"sokoo/internal/domain/entity"
)

// ReminderSender delivers a payment reminder to a shop owner over some
// channel (email in the default deployment). Implementations report the
// channel name so the reminder history records it.
type ReminderSender interface {
	// Send dispatches a reminder about the given payment to the shop's owner.
	Send(ctx context.Context, shop *entity.Shop, payment *entity.Payment, ownerEmail string) error

	// Channel names the delivery channel, e.g. "email".
	Channel() string
}
