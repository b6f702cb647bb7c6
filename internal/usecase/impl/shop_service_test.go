package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/infra/persistence/memory"
	"sokoo/internal/usecase"
)

func validRegisterInput() *usecase.RegisterShopInput {
	return &usecase.RegisterShopInput{
		Name:           "Fashion Hub",
		Industry:       "Apparel",
		City:           "Nairobi",
		Mall:           "Central Mall",
		ShopNumber:     "A12",
		WhatsappNumber: "+254700111222",
	}
}

func TestShopService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending shop for the owner", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane.smith@example.com", entity.RoleShopOwner)

		shop, err := svc.Register(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, validRegisterInput())

		require.NoError(t, err)
		assert.Equal(t, entity.ShopStatusPending, shop.Status)
		assert.Equal(t, owner.ID, shop.OwnerID)
		assert.Equal(t, "Jane Smith", shop.OwnerName)

		// Billing starts at approval, not registration.
		payments, err := memory.NewPaymentRepository(env.store).ListByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})

	t.Run("one shop per owner", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane.smith@example.com", entity.RoleShopOwner)
		env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

		_, err := svc.Register(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyRegistered)
	})

	t.Run("customers cannot register shops", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		customer := env.createUser(t, "Ann Njeri", "ann@example.com", entity.RoleCustomer)

		_, err := svc.Register(ctx, usecase.Actor{UserID: customer.ID, Role: customer.Role}, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("blank fields are reported per field", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane.smith@example.com", entity.RoleShopOwner)

		input := validRegisterInput()
		input.Name = "   "
		input.City = ""

		_, err := svc.Register(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, input)

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		fields := validationErr.Fields()
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "city")
		assert.Len(t, fields, 2)
	})
}

func TestShopService_Decisions(t *testing.T) {
	ctx := context.Background()
	admin := usecase.Actor{Role: entity.RoleAdmin}

	t.Run("approve opens the first billing cycle", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Sarah Ouma", "sarah@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Kitchen Plus", entity.ShopStatusPending)

		approved, err := svc.Approve(ctx, admin, shop.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ShopStatusActive, approved.Status)

		current, err := memory.NewPaymentRepository(env.store).FindCurrentByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), current.Amount)
		assert.Equal(t, "KES", current.Currency)
		assert.Equal(t, entity.PaymentStatusPending, current.Status)
		assert.WithinDuration(t, time.Now().UTC().AddDate(0, 1, 0), current.DueDate, time.Minute)
	})

	t.Run("reject is terminal and opens no cycle", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Sarah Ouma", "sarah@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Kitchen Plus", entity.ShopStatusPending)

		rejected, err := svc.Reject(ctx, admin, shop.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ShopStatusRejected, rejected.Status)

		_, err = memory.NewPaymentRepository(env.store).FindCurrentByShop(ctx, shop.ID)
		assert.Error(t, err)

		_, err = svc.Approve(ctx, admin, shop.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidShopTransition)
	})

	t.Run("approving an active shop is rejected", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

		_, err := svc.Approve(ctx, admin, shop.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidShopTransition)
	})

	t.Run("decisions require the admin role", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusPending)

		_, err := svc.Approve(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestShopService_Update(t *testing.T) {
	ctx := context.Background()
	newName := "Fashion Hub Deluxe"

	t.Run("owner edits their own shop", func(t *testing.T) {
		env := newTestEnv()
		cache := newFakeCache()
		svc := NewShopService(env.txManager, cache, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

		updated, err := svc.Update(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID, &usecase.UpdateShopInput{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
		assert.Equal(t, "Apparel", updated.Industry, "unset fields stay unchanged")
		assert.Equal(t, 1, cache.flushes)
	})

	t.Run("stranger cannot edit the shop", func(t *testing.T) {
		env := newTestEnv()
		svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		other := env.createUser(t, "John Doe", "john@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

		_, err := svc.Update(ctx, usecase.Actor{UserID: other.ID, Role: other.Role}, shop.ID, &usecase.UpdateShopInput{Name: &newName})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestShopService_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
	owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
	shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

	err := svc.Delete(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, usecase.Actor{Role: entity.RoleAdmin}, shop.ID))

	_, err = svc.Get(ctx, usecase.Actor{Role: entity.RoleAdmin}, shop.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_Get_Visibility(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
	owner := env.createUser(t, "Sarah Ouma", "sarah@example.com", entity.RoleShopOwner)
	pending := env.createShop(t, owner, "Kitchen Plus", entity.ShopStatusPending)
	anonymous := usecase.Actor{}

	t.Run("non-active shops are hidden from the public", func(t *testing.T) {
		_, err := svc.Get(ctx, anonymous, pending.ID)
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)

		customer := env.createUser(t, "Ann Njeri", "ann@example.com", entity.RoleCustomer)
		_, err = svc.Get(ctx, usecase.Actor{UserID: customer.ID, Role: customer.Role}, pending.ID)
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("owner and admin see the pending shop", func(t *testing.T) {
		shop, err := svc.Get(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, pending.ID, shop.ID)

		shop, err = svc.Get(ctx, usecase.Actor{Role: entity.RoleAdmin}, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, pending.ID, shop.ID)
	})

	t.Run("active shops stay public", func(t *testing.T) {
		other := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		active := env.createShop(t, other, "Fashion Hub", entity.ShopStatusActive)

		shop, err := svc.Get(ctx, anonymous, active.ID)
		require.NoError(t, err)
		assert.Equal(t, active.ID, shop.ID)
	})
}

func TestShopService_NilInput(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewShopService(env.txManager, nil, testBillingConfig(), newDiscardLogger())
	owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
	shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
	actor := usecase.Actor{UserID: owner.ID, Role: owner.Role}

	// A JSON null body binds to a nil input; it must surface as a
	// field-keyed validation error, never a panic.
	var validationErr *domainerrors.ValidationError

	_, err := svc.Register(ctx, actor, nil)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "body")

	_, err = svc.Update(ctx, actor, shop.ID, nil)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "body")
}
