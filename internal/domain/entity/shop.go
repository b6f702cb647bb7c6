// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a registered storefront in the marketplace directory.
// A shop is created by a shop owner and must be approved by an admin
// before it becomes publicly visible.
type Shop struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the shop. Immutable once assigned.
	Name       string     `json:"name"`        // The shop's display name shown in the public directory.
	OwnerID    uuid.UUID  `json:"owner_id"`    // The ID of the user who owns this shop. One shop per owner.
	OwnerName  string     `json:"owner_name"`  // Denormalized owner display name for listings.
	Industry   string     `json:"industry"`    // Industry/category, e.g. "Apparel", "Electronics".
	City       string     `json:"city"`        // City the shop operates in.
	Mall       string     `json:"mall"`        // Mall the shop is located in.
	ShopNumber string     `json:"shop_number"` // Unit number inside the mall, e.g. "A12".
	Phone      string     `json:"phone"`       // WhatsApp/contact number.
	Logo       string     `json:"logo"`        // Logo image reference.
	Status     ShopStatus `json:"status"`      // Lifecycle status, see ShopStatus.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of registration.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// ShopStatus represents the lifecycle state of a shop.
type ShopStatus string

const (
	// ShopStatusPending is the initial state, set on registration. The shop
	// is waiting for an admin approve/reject decision.
	ShopStatusPending ShopStatus = "pending"
	// ShopStatusActive indicates an approved shop, visible in the public directory.
	ShopStatusActive ShopStatus = "active"
	// ShopStatusRejected is terminal. Rejected shops leave the pending queue permanently.
	ShopStatusRejected ShopStatus = "rejected"
	// ShopStatusInactive indicates an approved shop whose subscription payment
	// has lapsed. Settling the overdue payment reactivates it.
	ShopStatusInactive ShopStatus = "inactive"
)

// String returns the string representation of the ShopStatus.
func (s ShopStatus) String() string {
	return string(s)
}

// IsValid checks if the ShopStatus is a valid value.
func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopStatusPending, ShopStatusActive, ShopStatusRejected, ShopStatusInactive:
		return true
	default:
		return false
	}
}

// shopTransitions is the authoritative transition map for the shop lifecycle.
// Rejected is terminal.
var shopTransitions = map[ShopStatus]map[ShopStatus]bool{
	ShopStatusPending:  {ShopStatusActive: true, ShopStatusRejected: true},
	ShopStatusActive:   {ShopStatusInactive: true},
	ShopStatusInactive: {ShopStatusActive: true},
	ShopStatusRejected: {},
}

// CanTransition reports whether a shop may move from one status to another.
func (s ShopStatus) CanTransition(to ShopStatus) bool {
	allowed, ok := shopTransitions[s]
	if !ok {
		return false
	}

	return allowed[to]
}

// IsListed reports whether the shop is visible in the public directory.
// Only active shops are listed.
func (s *Shop) IsListed() bool {
	return s.Status == ShopStatusActive
}
