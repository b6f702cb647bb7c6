package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/infra/persistence/model"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindCurrentByShop retrieves the shop's open (non-terminal) billing cycle.
func (repo *paymentRepository) FindCurrentByShop(ctx context.Context, shopID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND status NOT IN ?", shopID, terminalStatuses()).
		Order("due_date ASC").
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find current payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// ListByShop retrieves all payments for a shop, newest first by due date.
func (repo *paymentRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("due_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by shop")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// ListOverdue retrieves all payments whose derived status at the given time
// is overdue: stored as pending with a past due date.
func (repo *paymentRepository) ListOverdue(ctx context.Context, now time.Time) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", entity.PaymentStatusPending.String(), now).
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list overdue payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	return nil
}

// Settle atomically replaces the stored payment with its settled state and
// inserts the successor. The row is locked for the duration of the check and
// both writes, which makes settlement idempotent per payment ID even with
// two callers racing to settle the same record.
func (repo *paymentRepository) Settle(ctx context.Context, payment *entity.Payment, successor *entity.Payment) error {
	var stored model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", payment.ID).
		First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrPaymentNotFound
		}

		return errors.Wrap(err, "failed to lock payment for settlement")
	}

	if stored.Status == entity.PaymentStatusPaid.String() {
		return repository.ErrPaymentAlreadySettled
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromPaymentDomain(payment)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to settle payment")
	}

	if err := repo.db.WithContext(ctx).Create(fromPaymentDomain(successor)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to open successor cycle")
	}

	return nil
}

func terminalStatuses() []string {
	return []string{
		entity.PaymentStatusPaid.String(),
		entity.PaymentStatusFailed.String(),
		entity.PaymentStatusRefunded.String(),
	}
}
