package memory

import (
	"context"
	"sort"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/repository"

	"github.com/google/uuid"
)

// reminderRepository implements repository.ReminderRepository over the shared store.
type reminderRepository struct {
	store *Store
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(store *Store) repository.ReminderRepository {
	return &reminderRepository{store: store}
}

// Create appends a reminder record to the shop's history.
func (repo *reminderRepository) Create(_ context.Context, reminder *entity.Reminder) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.reminders = append(repo.store.reminders, cloneReminder(reminder))

	return nil
}

// ListByShop retrieves a shop's reminder history, newest first.
func (repo *reminderRepository) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entity.Reminder, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	reminders := make([]*entity.Reminder, 0)
	for _, reminder := range repo.store.reminders {
		if reminder.ShopID == shopID {
			reminders = append(reminders, cloneReminder(reminder))
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].SentAt.After(reminders[j].SentAt)
	})

	return reminders, nil
}
