// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder records one payment-reminder notification sent to a shop owner.
// Reminders form an append-only per-shop history.
type Reminder struct {
	ID        uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the reminder.
	ShopID    uuid.UUID      `json:"shop_id"`    // The shop whose owner was reminded.
	PaymentID uuid.UUID      `json:"payment_id"` // The payment the reminder is about.
	Channel   string         `json:"channel"`    // Delivery channel, e.g. "email".
	Status    ReminderStatus `json:"status"`     // Delivery outcome.
	SentAt    time.Time      `json:"sent_at"`    // When the reminder was dispatched.
}

// ReminderStatus represents the delivery outcome of a reminder.
type ReminderStatus string

const (
	// ReminderStatusSent indicates the reminder was handed to the channel.
	ReminderStatusSent ReminderStatus = "sent"
	// ReminderStatusFailed indicates the channel rejected the reminder.
	ReminderStatusFailed ReminderStatus = "failed"
)

// String returns the string representation of the ReminderStatus.
func (s ReminderStatus) String() string {
	return string(s)
}
