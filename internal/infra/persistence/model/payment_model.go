package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. PaymentDate is NULL until the
// cycle is settled.
type PaymentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount         int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(3);not null"`
	Status         string    `gorm:"type:varchar(20);index;not null"`
	DueDate        time.Time `gorm:"index;not null"`
	PaymentDate    *time.Time
	PaymentMethod  string `gorm:"type:varchar(50)"`
	TransactionRef string `gorm:"type:varchar(20)"`
	Notes          string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
