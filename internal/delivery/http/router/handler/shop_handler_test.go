package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sokoo/config"
	"sokoo/internal/delivery/http/middleware"
	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/infra/persistence/memory"
	"sokoo/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShopHandlerEnv(t *testing.T) (*ShopHandler, *memory.Store, *entity.User) {
	t.Helper()

	store := memory.NewStore()
	owner := &entity.User{
		ID:     uuid.New(),
		Name:   "Jane Smith",
		Email:  "jane@example.com",
		Role:   entity.RoleShopOwner,
		Status: entity.UserStatusActive,
	}
	require.NoError(t, memory.NewUserRepository(store).Create(context.Background(), owner))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	billing := config.BillingConfig{MonthlyFee: 5000, Currency: "KES", GraceDays: 7}
	uc := impl.NewShopService(memory.NewTransactionManager(store), nil, billing, logger)

	return NewShopHandler(uc, logger), store, owner
}

func TestShopHandler_Register_NullBody(t *testing.T) {
	h, _, owner := newShopHandlerEnv(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/shops", strings.NewReader("null"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, owner.ID)
	c.Set(middleware.ContextKeyRole, owner.Role)

	err := h.Register(c)

	// The null body must surface as a field-keyed validation error for the
	// error middleware to render, never a panic.
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "body")
}

func TestShopHandler_Get_AnonymousSeesOnlyActive(t *testing.T) {
	h, store, owner := newShopHandlerEnv(t)

	pending := &entity.Shop{
		ID:       uuid.New(),
		Name:     "Kitchen Plus",
		OwnerID:  owner.ID,
		Industry: "Kitchenware",
		City:     "Nairobi",
		Status:   entity.ShopStatusPending,
	}
	require.NoError(t, memory.NewShopRepository(store).Create(context.Background(), pending))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shops/"+pending.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(pending.ID.String())

	err := h.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)

	// The owner still sees their pending shop.
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(pending.ID.String())
	c.Set(middleware.ContextKeyUserID, owner.ID)
	c.Set(middleware.ContextKeyRole, owner.Role)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kitchen Plus")
}
