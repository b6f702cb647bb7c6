package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func updatableShop() *entity.Shop {
	now := time.Now().UTC()

	return &entity.Shop{
		ID:         uuid.New(),
		Name:       "Fashion Hub",
		OwnerID:    uuid.New(),
		OwnerName:  "Jane Smith",
		Industry:   "Apparel",
		City:       "Nairobi",
		Mall:       "Central Mall",
		ShopNumber: "A12",
		Phone:      "+254700111222",
		Status:     entity.ShopStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestShopRepository_Update_WritesClearedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShopRepository(db)

	// Logo cleared to the zero value; the update must still write the
	// column so the drivers agree on what a PATCH persists.
	shop := updatableShop()
	shop.Logo = ""

	mock.ExpectExec(`UPDATE "shops" SET .*"logo".*WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), shop))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepository_Update_MissingShop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShopRepository(db)

	mock.ExpectExec(`UPDATE "shops" SET `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), updatableShop())
	assert.ErrorIs(t, err, repository.ErrShopNotFound)
}
