package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/infra/persistence/model"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create appends a reminder record to the shop's history.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record reminder")
	}

	return nil
}

// ListByShop retrieves a shop's reminder history, newest first.
func (repo *reminderRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("sent_at DESC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminders by shop")
	}

	reminders := make([]*entity.Reminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}
