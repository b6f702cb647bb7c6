package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/infra/persistence/memory"
	"sokoo/internal/usecase"
)

func TestBillingService_History(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
	owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
	shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)

	paid := env.createPayment(t, shop.ID, entity.PaymentStatusPaid, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC))
	current := env.createPayment(t, shop.ID, entity.PaymentStatusPending, time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC))

	t.Run("owner sees current cycle and history", func(t *testing.T) {
		output, err := svc.History(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID)

		require.NoError(t, err)
		require.NotNil(t, output.Current)
		assert.Equal(t, current.ID, output.Current.ID)
		require.Len(t, output.History, 1)
		assert.Equal(t, paid.ID, output.History[0].ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		other := env.createUser(t, "John Doe", "john@example.com", entity.RoleShopOwner)

		_, err := svc.History(ctx, usecase.Actor{UserID: other.ID, Role: other.Role}, shop.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestBillingService_Settle(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

	t.Run("settles and opens the next cycle", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		output, err := svc.Settle(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID, payment.ID, "M-Pesa")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPaid, output.Payment.Status)
		assert.Regexp(t, `^MP\d{10}$`, output.Payment.TransactionRef)
		require.NotNil(t, output.Successor)
		assert.Equal(t, due.AddDate(0, 1, 0), output.Successor.DueDate)
		assert.Equal(t, payment.Amount, output.Successor.Amount)
	})

	t.Run("repeat settlement is a no-op", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)
		actor := usecase.Actor{UserID: owner.ID, Role: owner.Role}

		first, err := svc.Settle(ctx, actor, shop.ID, payment.ID, "M-Pesa")
		require.NoError(t, err)

		second, err := svc.Settle(ctx, actor, shop.ID, payment.ID, "Credit Card")
		require.NoError(t, err)
		assert.Nil(t, second.Successor)
		assert.Equal(t, first.Payment.TransactionRef, second.Payment.TransactionRef)
		assert.Equal(t, "M-Pesa", second.Payment.PaymentMethod, "first settlement wins")

		payments, err := memory.NewPaymentRepository(env.store).ListByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 2, "exactly one settled cycle and one successor")
	})

	t.Run("settling a lapsed shop reactivates it", func(t *testing.T) {
		env := newTestEnv()
		cache := newFakeCache()
		svc := NewBillingService(env.txManager, nil, cache, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "David Kamau", "david@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Shoe Haven", entity.ShopStatusInactive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		_, err := svc.Settle(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID, payment.ID, "Bank Transfer")

		require.NoError(t, err)

		reloaded, err := memory.NewShopRepository(env.store).FindByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ShopStatusActive, reloaded.Status)
		assert.Equal(t, 1, cache.flushes)
	})

	t.Run("payment of another shop reads as not found", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		other := env.createUser(t, "John Doe", "john@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		otherShop := env.createShop(t, other, "Tech World", entity.ShopStatusActive)
		payment := env.createPayment(t, otherShop.ID, entity.PaymentStatusPending, due)

		_, err := svc.Settle(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID, payment.ID, "M-Pesa")

		assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
	})

	t.Run("empty method fails validation", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())

		_, err := svc.Settle(ctx, usecase.Actor{Role: entity.RoleAdmin}, uuid.New(), uuid.New(), "  ")

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields(), "payment_method")
	})
}

func TestBillingService_Remind(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	admin := usecase.Actor{Role: entity.RoleAdmin}

	t.Run("records delivery through the sender", func(t *testing.T) {
		env := newTestEnv()
		sender := &fakeSender{}
		svc := NewBillingService(env.txManager, sender, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		reminder, err := svc.Remind(ctx, admin, shop.ID, payment.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ReminderStatusSent, reminder.Status)
		assert.Equal(t, "email", reminder.Channel)
		assert.Equal(t, 1, sender.sent)
	})

	t.Run("failed delivery is recorded as failed", func(t *testing.T) {
		env := newTestEnv()
		sender := &fakeSender{fail: true}
		svc := NewBillingService(env.txManager, sender, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		reminder, err := svc.Remind(ctx, admin, shop.ID, payment.ID)

		require.NoError(t, err, "a rejected delivery is history, not an error")
		assert.Equal(t, entity.ReminderStatusFailed, reminder.Status)
	})

	t.Run("without a sender the reminder is only recorded", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		reminder, err := svc.Remind(ctx, admin, shop.ID, payment.ID)

		require.NoError(t, err)
		assert.Equal(t, "none", reminder.Channel)

		history, err := svc.ReminderHistory(ctx, admin, shop.ID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("owners cannot send reminders", func(t *testing.T) {
		env := newTestEnv()
		svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())
		owner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
		shop := env.createShop(t, owner, "Fashion Hub", entity.ShopStatusActive)
		payment := env.createPayment(t, shop.ID, entity.PaymentStatusPending, due)

		_, err := svc.Remind(ctx, usecase.Actor{UserID: owner.ID, Role: owner.Role}, shop.ID, payment.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestBillingService_SweepOverdue(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

	env := newTestEnv()
	svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())

	lapsedOwner := env.createUser(t, "Jane Smith", "jane@example.com", entity.RoleShopOwner)
	lapsed := env.createShop(t, lapsedOwner, "Fashion Hub", entity.ShopStatusActive)
	env.createPayment(t, lapsed.ID, entity.PaymentStatusPending, due)

	graceOwner := env.createUser(t, "John Doe", "john@example.com", entity.RoleShopOwner)
	inGrace := env.createShop(t, graceOwner, "Tech World", entity.ShopStatusActive)
	env.createPayment(t, inGrace.ID, entity.PaymentStatusPending, due.AddDate(0, 0, 5))

	currentOwner := env.createUser(t, "Mary Wanjiku", "mary@example.com", entity.RoleShopOwner)
	current := env.createShop(t, currentOwner, "Beauty Palace", entity.ShopStatusActive)
	env.createPayment(t, current.ID, entity.PaymentStatusPending, due.AddDate(0, 2, 0))

	// Ten days past the first due date: beyond the 7-day grace for Fashion
	// Hub, within it for Tech World.
	now := due.AddDate(0, 0, 10)
	count, err := svc.SweepOverdue(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	shopRepo := memory.NewShopRepository(env.store)
	reloaded, err := shopRepo.FindByID(ctx, lapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusInactive, reloaded.Status)

	untouched, err := shopRepo.FindByID(ctx, inGrace.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusActive, untouched.Status)

	// A second sweep finds the shop already inactive and leaves it be.
	count, err = svc.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBillingService_SweepOverdue_SeededDataSurvives(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	require.NoError(t, memory.Seed(env.store, fakeHasher{}))
	svc := NewBillingService(env.txManager, nil, nil, testBillingConfig(), newDiscardLogger())

	// The demo dataset is anchored to the wall clock, so a sweep right
	// after startup must not deactivate any of the active demo shops.
	count, err := svc.SweepOverdue(ctx, time.Now().UTC())

	require.NoError(t, err)
	assert.Zero(t, count)

	shops, err := memory.NewShopRepository(env.store).List(ctx, repository.ShopQuery{Status: entity.ShopStatusActive.String()})
	require.NoError(t, err)
	assert.Len(t, shops, 3)
}
