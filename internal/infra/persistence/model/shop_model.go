// Package model contains the GORM table mappings for the Postgres driver.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. One shop per owner, enforced by the
// unique index on owner_id.
type ShopModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"type:varchar(100);not null"`
	OwnerID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	OwnerName  string    `gorm:"type:varchar(100);not null"`
	Industry   string    `gorm:"type:varchar(100);index"`
	City       string    `gorm:"type:varchar(100);index"`
	Mall       string    `gorm:"type:varchar(100)"`
	ShopNumber string    `gorm:"type:varchar(20)"`
	Phone      string    `gorm:"type:varchar(30)"`
	Logo       string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Payments  []PaymentModel  `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	Reminders []ReminderModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
