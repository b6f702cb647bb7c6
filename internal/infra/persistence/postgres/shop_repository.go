package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/filter"
	"sokoo/internal/domain/repository"
	"sokoo/internal/infra/persistence/model"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// FindByID retrieves a single shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// FindByOwner retrieves the shop owned by a user, if any.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return toShopDomain(&shopM), nil
}

// List retrieves shops matching the query in insertion order. Category
// filters are pushed into SQL; the free-text term is applied in memory with
// the same matcher the memory driver uses, so both drivers rank identically.
func (repo *shopRepository) List(ctx context.Context, query repository.ShopQuery) ([]*entity.Shop, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ShopModel{}).Order("created_at ASC")
	if hasCategory(query.Status) {
		tx = tx.Where("status = ?", query.Status)
	}
	if hasCategory(query.Industry) {
		tx = tx.Where("LOWER(industry) = LOWER(?)", query.Industry)
	}
	if hasCategory(query.City) {
		tx = tx.Where("LOWER(city) = LOWER(?)", query.City)
	}

	var shopModels []*model.ShopModel
	if err := tx.Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return filter.Apply(shops,
		filter.Text(query.Term,
			func(s *entity.Shop) string { return s.Name },
			func(s *entity.Shop) string { return s.OwnerName },
			func(s *entity.Shop) string { return s.City },
		),
	), nil
}

// Create persists a new shop. At most one shop per owner.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopAlreadyOwned
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

// Update modifies an existing shop. The caller hands over the full entity,
// so every column is written; Select("*") keeps cleared fields (gorm skips
// zero values on struct updates) in step with the memory driver.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(shopM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop permanently. Payments and reminders go with it via
// the ON DELETE CASCADE constraints.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// hasCategory reports whether a category filter narrows the query. Empty and
// the "all" sentinel pass everything.
func hasCategory(value string) bool {
	return value != "" && !strings.EqualFold(value, filter.All)
}
