package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShopStatus_IsValid(t *testing.T) {
	for _, status := range []ShopStatus{ShopStatusPending, ShopStatusActive, ShopStatusRejected, ShopStatusInactive} {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, ShopStatus("deleted").IsValid())
	assert.False(t, ShopStatus("").IsValid())
}

func TestShopStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ShopStatus
		to      ShopStatus
		allowed bool
	}{
		{"pending approved by admin", ShopStatusPending, ShopStatusActive, true},
		{"pending rejected by admin", ShopStatusPending, ShopStatusRejected, true},
		{"active deactivated on payment lapse", ShopStatusActive, ShopStatusInactive, true},
		{"inactive reactivated on settlement", ShopStatusInactive, ShopStatusActive, true},
		{"rejected is terminal", ShopStatusRejected, ShopStatusActive, false},
		{"rejected cannot re-enter queue", ShopStatusRejected, ShopStatusPending, false},
		{"active cannot be re-approved", ShopStatusActive, ShopStatusActive, false},
		{"pending cannot skip to inactive", ShopStatusPending, ShopStatusInactive, false},
		{"unknown source status", ShopStatus("deleted"), ShopStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestShop_IsListed(t *testing.T) {
	shop := &Shop{Name: "Fashion Hub", Status: ShopStatusPending}
	assert.False(t, shop.IsListed())

	shop.Status = ShopStatusActive
	assert.True(t, shop.IsListed())

	shop.Status = ShopStatusInactive
	assert.False(t, shop.IsListed())
}
