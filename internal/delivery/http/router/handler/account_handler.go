// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"sokoo/internal/delivery/http/middleware"
	"sokoo/internal/delivery/http/response"
	"sokoo/internal/domain/entity"
	"sokoo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// actorFrom reads the authenticated caller set by the auth middleware.
func actorFrom(c echo.Context) (usecase.Actor, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return usecase.Actor{}, false
	}

	role, ok := c.Get(middleware.ContextKeyRole).(entity.Role)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{UserID: userID, Role: role}, true
}

// viewerRole reads the caller's role when one was authenticated; anonymous
// requests browse as customers.
func viewerRole(c echo.Context) entity.Role {
	if role, ok := c.Get(middleware.ContextKeyRole).(entity.Role); ok {
		return role
	}

	return entity.RoleCustomer
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the account creation request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	user, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Account created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListUsers handles the back-office user listing request.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.uc.ListUsers(
		c.Request().Context(),
		actor,
		c.QueryParam("q"),
		c.QueryParam("role"),
		c.QueryParam("status"),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
