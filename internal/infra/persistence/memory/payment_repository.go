package memory

import (
	"context"
	"sort"
	"time"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/repository"

	"github.com/google/uuid"
)

// paymentRepository implements repository.PaymentRepository over the shared store.
type paymentRepository struct {
	store *Store
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	payment := repo.store.findPayment(id)
	if payment == nil {
		return nil, repository.ErrPaymentNotFound
	}

	return clonePayment(payment), nil
}

// FindCurrentByShop retrieves the shop's open (non-terminal) billing cycle.
func (repo *paymentRepository) FindCurrentByShop(_ context.Context, shopID uuid.UUID) (*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, payment := range repo.store.payments {
		if payment.ShopID == shopID && payment.IsCurrent() {
			return clonePayment(payment), nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

// ListByShop retrieves all payments for a shop, newest first by due date.
func (repo *paymentRepository) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	payments := make([]*entity.Payment, 0)
	for _, payment := range repo.store.payments {
		if payment.ShopID == shopID {
			payments = append(payments, clonePayment(payment))
		}
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].DueDate.After(payments[j].DueDate)
	})

	return payments, nil
}

// ListOverdue retrieves all payments whose derived status at the given time
// is overdue, across shops.
func (repo *paymentRepository) ListOverdue(_ context.Context, now time.Time) ([]*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	overdue := make([]*entity.Payment, 0)
	for _, payment := range repo.store.payments {
		if payment.EffectiveStatus(now) == entity.PaymentStatusOverdue {
			overdue = append(overdue, clonePayment(payment))
		}
	}

	return overdue, nil
}

// Create persists a new payment.
func (repo *paymentRepository) Create(_ context.Context, payment *entity.Payment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.payments = append(repo.store.payments, clonePayment(payment))

	return nil
}

// Settle atomically replaces the stored payment with its settled state and
// appends the successor. The already-paid check and both writes happen under
// one lock, which makes settlement idempotent per payment ID even with an
// admin and an owner racing to settle the same record.
func (repo *paymentRepository) Settle(_ context.Context, payment *entity.Payment, successor *entity.Payment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored := repo.store.findPayment(payment.ID)
	if stored == nil {
		return repository.ErrPaymentNotFound
	}
	if stored.Status == entity.PaymentStatusPaid {
		return repository.ErrPaymentAlreadySettled
	}

	*stored = *payment
	repo.store.payments = append(repo.store.payments, clonePayment(successor))

	return nil
}

// findPayment must be called with the store lock held.
func (s *Store) findPayment(id uuid.UUID) *entity.Payment {
	for _, payment := range s.payments {
		if payment.ID == id {
			return payment
		}
	}

	return nil
}
