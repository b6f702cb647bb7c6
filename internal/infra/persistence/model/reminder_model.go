package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminders' table.
type ReminderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID    uuid.UUID `gorm:"type:uuid;index;not null"`
	PaymentID uuid.UUID `gorm:"type:uuid;index;not null"`
	Channel   string    `gorm:"type:varchar(20);not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	SentAt    time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
