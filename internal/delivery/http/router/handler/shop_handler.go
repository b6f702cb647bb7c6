package handler

import (
	"context"
	"log/slog"
	"net/http"

	"sokoo/internal/delivery/http/response"
	"sokoo/internal/domain/entity"
	"sokoo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for shop lifecycle handlers.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the shop registration request.
func (h *ShopHandler) Register(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.RegisterShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop registration input")
	}

	shop, err := h.uc.Register(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop registered successfully")
}

// Get handles the single-shop lookup request. Anonymous callers see only
// active shops; admins and the owner may fetch a shop in any status.
func (h *ShopHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	actor, _ := actorFrom(c)

	shop, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// Update handles the shop edit request.
func (h *ShopHandler) Update(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	var input *usecase.UpdateShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop update input")
	}

	shop, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated successfully")
}

// Approve handles the admin decision to activate a pending shop.
func (h *ShopHandler) Approve(c echo.Context) error {
	return h.decide(c, h.uc.Approve, "Shop approved successfully")
}

// Reject handles the admin decision to reject a pending shop.
func (h *ShopHandler) Reject(c echo.Context) error {
	return h.decide(c, h.uc.Reject, "Shop rejected successfully")
}

func (h *ShopHandler) decide(
	c echo.Context,
	decision func(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Shop, error),
	message string,
) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	shop, err := decision(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, message)
}

// Delete handles the admin request to remove a shop permanently.
func (h *ShopHandler) Delete(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Shop deleted successfully")
}
