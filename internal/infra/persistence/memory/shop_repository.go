package memory

import (
	"context"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/filter"
	"sokoo/internal/domain/repository"

	"github.com/google/uuid"
)

// shopRepository implements repository.ShopRepository over the shared store.
type shopRepository struct {
	store *Store
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(store *Store) repository.ShopRepository {
	return &shopRepository{store: store}
}

// FindByID retrieves a single shop by its unique ID.
func (repo *shopRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, shop := range repo.store.shops {
		if shop.ID == id {
			return cloneShop(shop), nil
		}
	}

	return nil, repository.ErrShopNotFound
}

// FindByOwner retrieves the shop owned by a user, if any.
func (repo *shopRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, shop := range repo.store.shops {
		if shop.OwnerID == ownerID {
			return cloneShop(shop), nil
		}
	}

	return nil, repository.ErrShopNotFound
}

// List retrieves shops matching the query, preserving insertion order.
func (repo *shopRepository) List(_ context.Context, query repository.ShopQuery) ([]*entity.Shop, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matched := filter.Apply(repo.store.shops,
		filter.Text(query.Term,
			func(s *entity.Shop) string { return s.Name },
			func(s *entity.Shop) string { return s.OwnerName },
			func(s *entity.Shop) string { return s.City },
		),
		filter.Category(query.Status, func(s *entity.Shop) string { return s.Status.String() }),
		filter.Category(query.Industry, func(s *entity.Shop) string { return s.Industry }),
		filter.Category(query.City, func(s *entity.Shop) string { return s.City }),
	)

	shops := make([]*entity.Shop, 0, len(matched))
	for _, shop := range matched {
		shops = append(shops, cloneShop(shop))
	}

	return shops, nil
}

// Create persists a new shop. At most one shop per owner.
func (repo *shopRepository) Create(_ context.Context, shop *entity.Shop) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.shops {
		if existing.OwnerID == shop.OwnerID {
			return repository.ErrShopAlreadyOwned
		}
	}

	repo.store.shops = append(repo.store.shops, cloneShop(shop))

	return nil
}

// Update modifies an existing shop in place.
func (repo *shopRepository) Update(_ context.Context, shop *entity.Shop) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i, existing := range repo.store.shops {
		if existing.ID == shop.ID {
			repo.store.shops[i] = cloneShop(shop)

			return nil
		}
	}

	return repository.ErrShopNotFound
}

// Delete removes a shop permanently, along with its payments and reminders.
func (repo *shopRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	shops := repo.store.shops[:0]
	found := false
	for _, shop := range repo.store.shops {
		if shop.ID == id {
			found = true

			continue
		}
		shops = append(shops, shop)
	}
	if !found {
		return repository.ErrShopNotFound
	}
	repo.store.shops = shops

	payments := repo.store.payments[:0]
	for _, payment := range repo.store.payments {
		if payment.ShopID != id {
			payments = append(payments, payment)
		}
	}
	repo.store.payments = payments

	reminders := repo.store.reminders[:0]
	for _, reminder := range repo.store.reminders {
		if reminder.ShopID != id {
			reminders = append(reminders, reminder)
		}
	}
	repo.store.reminders = reminders

	return nil
}
