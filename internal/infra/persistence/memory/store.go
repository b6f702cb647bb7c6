// Package memory contains an in-memory implementation of the persistence
// layer. It is the default storage driver: the marketplace ships with a
// seeded demo dataset and no external database requirement. All collections
// preserve insertion order so filtered listings stay stable.
package memory

import (
	"sync"

	"sokoo/internal/domain/entity"
)

// Store is the shared in-memory dataset. One RWMutex guards all collections;
// multi-step invariants (settlement idempotence, one shop per owner) are
// enforced inside single locked repository operations rather than via a
// transaction protocol.
type Store struct {
	mu        sync.RWMutex
	shops     []*entity.Shop
	payments  []*entity.Payment
	users     []*entity.User
	reminders []*entity.Reminder
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

func cloneShop(s *entity.Shop) *entity.Shop {
	c := *s
	return &c
}

func clonePayment(p *entity.Payment) *entity.Payment {
	c := *p
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneReminder(r *entity.Reminder) *entity.Reminder {
	c := *r
	return &c
}
