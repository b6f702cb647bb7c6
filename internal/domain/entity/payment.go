// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Payment represents one billing cycle's obligation for a shop. Payments form
// an append-only history per shop; at any time exactly one payment is the
// "current" (non-terminal) one.
type Payment struct {
	ID             uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the payment.
	ShopID         uuid.UUID     `json:"shop_id"`         // The shop this payment belongs to.
	Amount         int64         `json:"amount"`          // Amount in the currency's minor-free unit (e.g. 5000 KES).
	Currency       string        `json:"currency"`        // ISO currency code, e.g. "KES".
	Status         PaymentStatus `json:"status"`          // Stored status. Overdue is derived, never stored.
	DueDate        time.Time     `json:"due_date"`        // When this cycle's payment is due.
	PaymentDate    time.Time     `json:"payment_date"`    // Zero until settled. Set iff Status == paid.
	PaymentMethod  string        `json:"payment_method"`  // e.g. "M-Pesa", "Credit Card", "Bank Transfer".
	TransactionRef string        `json:"transaction_ref"` // Reference assigned at settlement.
	Notes          string        `json:"notes"`           // Free-form notes, e.g. "Monthly subscription fee".
	CreatedAt      time.Time     `json:"created_at"`      // Timestamp of cycle creation.
	UpdatedAt      time.Time     `json:"updated_at"`      // Timestamp of the last modification.
}

// PaymentStatus represents the settlement state of a payment cycle.
type PaymentStatus string

const (
	// PaymentStatusPending is the initial state, awaiting the due date.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid is terminal for the cycle.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusOverdue is a derived state: pending past its due date.
	// It is computed via EffectiveStatus and never persisted, to avoid drift.
	PaymentStatusOverdue PaymentStatus = "overdue"
	// PaymentStatusFailed marks a cycle whose settlement attempt failed.
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusRefunded marks a settled cycle that was refunded.
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the cycle's lifecycle.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// EffectiveStatus derives the externally visible status at a given time.
// A pending payment past its due date reads as overdue; everything else
// reads as stored.
func (p *Payment) EffectiveStatus(now time.Time) PaymentStatus {
	if p.Status == PaymentStatusPending && now.After(p.DueDate) {
		return PaymentStatusOverdue
	}

	return p.Status
}

// IsCurrent reports whether this payment is the shop's open billing cycle.
func (p *Payment) IsCurrent() bool {
	return !p.Status.IsTerminal()
}

// Settle marks the payment as paid at the given time with the given method,
// assigning a fresh transaction reference. It returns the successor payment
// for the next billing cycle: same shop, amount and currency, due exactly one
// calendar month after this cycle's due date.
//
// Settle is NOT idempotent by itself; callers must check Status before
// invoking it. Repositories enforce idempotence per payment ID.
func (p *Payment) Settle(now time.Time, method string) *Payment {
	p.Status = PaymentStatusPaid
	p.PaymentDate = now
	p.PaymentMethod = method
	p.TransactionRef = NewTransactionRef(method)
	p.UpdatedAt = now

	return &Payment{
		ID:        uuid.New(),
		ShopID:    p.ShopID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    PaymentStatusPending,
		DueDate:   p.DueDate.AddDate(0, 1, 0),
		Notes:     p.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// methodPrefixes maps payment methods to the two-letter transaction
// reference prefix.
var methodPrefixes = map[string]string{
	"m-pesa":        "MP",
	"credit card":   "CC",
	"bank transfer": "BT",
}

// NewTransactionRef generates a transaction reference of the form
// <2-letter method prefix><10 digits>, e.g. "CC0483921057". Digits come from
// a CSPRNG; unknown methods fall back to the generic "TX" prefix.
func NewTransactionRef(method string) string {
	prefix, ok := methodPrefixes[strings.ToLower(method)]
	if !ok {
		prefix = "TX"
	}

	var digits strings.Builder
	digits.Grow(10)
	for range 10 {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		digits.WriteString(n.String())
	}

	return prefix + digits.String()
}
