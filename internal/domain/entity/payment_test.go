package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_EffectiveStatus(t *testing.T) {
	due := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	payment := &Payment{Status: PaymentStatusPending, DueDate: due}

	// Before the due date a pending payment reads as pending.
	assert.Equal(t, PaymentStatusPending, payment.EffectiveStatus(due.AddDate(0, 0, -1)))

	// Past the due date it derives to overdue without being stored.
	assert.Equal(t, PaymentStatusOverdue, payment.EffectiveStatus(due.AddDate(0, 0, 1)))
	assert.Equal(t, PaymentStatusPending, payment.Status)

	// Terminal statuses never derive to overdue.
	payment.Status = PaymentStatusPaid
	assert.Equal(t, PaymentStatusPaid, payment.EffectiveStatus(due.AddDate(0, 1, 0)))
}

func TestPayment_Settle(t *testing.T) {
	due := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 10, 12, 30, 0, 0, time.UTC)
	payment := &Payment{
		ID:       uuid.New(),
		ShopID:   uuid.New(),
		Amount:   5000,
		Currency: "KES",
		Status:   PaymentStatusPending,
		DueDate:  due,
		Notes:    "Monthly subscription fee",
	}

	successor := payment.Settle(now, "Credit Card")

	assert.Equal(t, PaymentStatusPaid, payment.Status)
	assert.Equal(t, now, payment.PaymentDate)
	assert.Equal(t, "Credit Card", payment.PaymentMethod)
	assert.NotEmpty(t, payment.TransactionRef)

	require.NotNil(t, successor)
	assert.Equal(t, payment.ShopID, successor.ShopID)
	assert.Equal(t, int64(5000), successor.Amount)
	assert.Equal(t, "KES", successor.Currency)
	assert.Equal(t, PaymentStatusPending, successor.Status)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), successor.DueDate)
	assert.True(t, successor.PaymentDate.IsZero())
	assert.NotEqual(t, payment.ID, successor.ID)
}

func TestPayment_PaidImpliesPaymentDate(t *testing.T) {
	payment := &Payment{
		ID:       uuid.New(),
		ShopID:   uuid.New(),
		Amount:   5000,
		Currency: "KES",
		Status:   PaymentStatusPending,
		DueDate:  time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, payment.PaymentDate.IsZero())
	assert.True(t, payment.IsCurrent())

	payment.Settle(time.Now(), "M-Pesa")

	assert.False(t, payment.PaymentDate.IsZero())
	assert.False(t, payment.IsCurrent())
}

func TestNewTransactionRef(t *testing.T) {
	tests := []struct {
		method string
		prefix string
	}{
		{"M-Pesa", "MP"},
		{"Credit Card", "CC"},
		{"bank transfer", "BT"},
		{"Cash", "TX"},
		{"", "TX"},
	}

	pattern := regexp.MustCompile(`^[A-Z]{2}\d{10}$`)
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			ref := NewTransactionRef(tt.method)
			assert.Regexp(t, pattern, ref)
			assert.Equal(t, tt.prefix, ref[:2])
		})
	}
}

func TestNewTransactionRef_FreshPerCall(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		ref := NewTransactionRef("Credit Card")
		assert.False(t, seen[ref], "duplicate transaction ref %s", ref)
		seen[ref] = true
	}
}
