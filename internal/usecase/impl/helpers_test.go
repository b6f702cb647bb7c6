package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/infra/persistence/memory"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBillingConfig() config.BillingConfig {
	return config.BillingConfig{
		MonthlyFee: 5000,
		Currency:   "KES",
		GraceDays:  7,
	}
}

// testEnv runs the services against the real in-memory store, which doubles
// as the repository fake.
type testEnv struct {
	store     *memory.Store
	txManager repository.TransactionManager
}

func newTestEnv() *testEnv {
	store := memory.NewStore()

	return &testEnv{
		store:     store,
		txManager: memory.NewTransactionManager(store),
	}
}

func (env *testEnv) createUser(t *testing.T, name, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Role:         role,
		Status:       entity.UserStatusActive,
		PasswordHash: "hashed:password123",
	}
	require.NoError(t, memory.NewUserRepository(env.store).Create(context.Background(), user))

	return user
}

func (env *testEnv) createShop(t *testing.T, owner *entity.User, name string, status entity.ShopStatus) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   owner.ID,
		OwnerName: owner.Name,
		Industry:  "Apparel",
		City:      "Nairobi",
		Status:    status,
	}
	require.NoError(t, memory.NewShopRepository(env.store).Create(context.Background(), shop))

	return shop
}

func (env *testEnv) createPayment(t *testing.T, shopID uuid.UUID, status entity.PaymentStatus, due time.Time) *entity.Payment {
	t.Helper()

	payment := &entity.Payment{
		ID:       uuid.New(),
		ShopID:   shopID,
		Amount:   5000,
		Currency: "KES",
		Status:   status,
		DueDate:  due,
		Notes:    "Monthly subscription fee",
	}
	require.NoError(t, memory.NewPaymentRepository(env.store).Create(context.Background(), payment))

	return payment
}

// fakeHasher keeps service tests independent of bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(userID uuid.UUID, _ entity.Role) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateToken(string) (*service.Claims, error) { return nil, nil }

// fakeSender records reminder deliveries and can be told to fail.
type fakeSender struct {
	fail bool
	sent int
}

func (s *fakeSender) Send(context.Context, *entity.Shop, *entity.Payment, string) error {
	s.sent++
	if s.fail {
		return errDeliveryRejected
	}

	return nil
}

func (s *fakeSender) Channel() string { return "email" }

var errDeliveryRejected = errors.New("delivery rejected")

// fakeCache is a map-backed DirectoryCache.
type fakeCache struct {
	entries map[string][]*entity.Shop
	hits    int
	sets    int
	flushes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]*entity.Shop)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]*entity.Shop, bool) {
	shops, ok := c.entries[key]
	if ok {
		c.hits++
	}

	return shops, ok
}

func (c *fakeCache) Set(_ context.Context, key string, shops []*entity.Shop) {
	c.sets++
	c.entries[key] = shops
}

func (c *fakeCache) Invalidate(context.Context) {
	c.flushes++
	c.entries = make(map[string][]*entity.Shop)
}
