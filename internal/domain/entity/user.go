// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a role-tagged account in the system. A shop-owner user owns at most
// one Shop; the link lives on the Shop side (Shop.OwnerID).
type User struct {
	ID           uuid.UUID  `json:"id"`     // The Global Unique Identifier (GUID) for the user.
	Name         string     `json:"name"`   // The user's display name.
	Email        string     `json:"email"`  // Unique login identifier.
	Role         Role       `json:"role"`   // The user's role, see Role.
	Status       UserStatus `json:"status"` // Account status, see UserStatus.
	PasswordHash string     `json:"-"`      // Bcrypt hash. Never serialized.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserStatus represents the account state of a user.
type UserStatus string

const (
	// UserStatusActive indicates a usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive indicates a deactivated account.
	UserStatusInactive UserStatus = "inactive"
	// UserStatusSuspended indicates an account blocked by an admin.
	UserStatusSuspended UserStatus = "suspended"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	default:
		return false
	}
}
