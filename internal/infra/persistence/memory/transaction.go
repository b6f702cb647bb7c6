package memory

import (
	"context"

	"sokoo/internal/domain/repository"
)

// memoryTransactionManager implements the domain's TransactionManager for the
// in-memory store. There is no transaction protocol to speak of: repository
// operations are individually atomic under the store mutex, and multi-step
// invariants (idempotent settlement spawning exactly one successor) live in
// single locked repository methods. Execute simply hands the caller a factory
// over the shared store.
type memoryTransactionManager struct {
	store *Store
}

// memoryRepositoryFactory implements the domain's RepositoryFactory interface.
type memoryRepositoryFactory struct {
	store *Store
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

// Execute runs the given function against the shared store.
func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memoryRepositoryFactory{store: tm.store})
}

// ShopRepo returns a ShopRepository over the shared store.
func (f *memoryRepositoryFactory) ShopRepo() repository.ShopRepository {
	return NewShopRepository(f.store)
}

// PaymentRepo returns a PaymentRepository over the shared store.
func (f *memoryRepositoryFactory) PaymentRepo() repository.PaymentRepository {
	return NewPaymentRepository(f.store)
}

// UserRepo returns a UserRepository over the shared store.
func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store)
}

// ReminderRepo returns a ReminderRepository over the shared store.
func (f *memoryRepositoryFactory) ReminderRepo() repository.ReminderRepository {
	return NewReminderRepository(f.store)
}
