package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sokoo/internal/delivery/http/response"
	"sokoo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// settleRequest is the body of a settlement request.
type settleRequest struct {
	Method string `json:"payment_method"`
}

// BillingHandler holds dependencies for payment and reminder handlers.
type BillingHandler struct {
	uc     usecase.BillingUsecase
	logger *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(uc usecase.BillingUsecase, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		uc:     uc,
		logger: logger,
	}
}

// History handles the payment ledger request for one shop.
func (h *BillingHandler) History(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	output, err := h.uc.History(c.Request().Context(), actor, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment history retrieved successfully")
}

// Settle handles the settlement request for one payment.
func (h *BillingHandler) Settle(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var req settleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settlement input")
	}

	output, err := h.uc.Settle(c.Request().Context(), actor, shopID, paymentID, req.Method)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment settled successfully")
}

// Remind handles the admin request to send a payment reminder.
func (h *BillingHandler) Remind(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	reminder, err := h.uc.Remind(c.Request().Context(), actor, shopID, paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder recorded successfully")
}

// ReminderHistory handles the reminder log request for one shop.
func (h *BillingHandler) ReminderHistory(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	reminders, err := h.uc.ReminderHistory(c.Request().Context(), actor, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders, "Reminders retrieved successfully")
}

// SweepOverdue handles the admin request to run the overdue sweep on demand.
// The same sweep runs periodically in the background worker.
func (h *BillingHandler) SweepOverdue(c echo.Context) error {
	count, err := h.uc.SweepOverdue(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"deactivated": count}, "Overdue sweep completed")
}
