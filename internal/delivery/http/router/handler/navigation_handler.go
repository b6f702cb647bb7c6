package handler

import (
	"net/http"

	"sokoo/internal/delivery/http/middleware"
	"sokoo/internal/delivery/http/response"
	"sokoo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// navigationResponse is the role-scoped navigation payload.
type navigationResponse struct {
	Entries      []entity.NavEntry `json:"entries"`
	DefaultRoute string            `json:"default_route"`
}

// NavigationHandler serves the role-scoped navigation menu.
type NavigationHandler struct{}

// NewNavigationHandler is the constructor for NavigationHandler, injected by Fx.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Menu returns the navigation entries and landing route for the caller's role.
func (h *NavigationHandler) Menu(c echo.Context) error {
	role, ok := c.Get(middleware.ContextKeyRole).(entity.Role)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	return response.Success(c, http.StatusOK, navigationResponse{
		Entries:      entity.NavEntriesFor(role),
		DefaultRoute: entity.DefaultRoute(role),
	}, "Navigation retrieved successfully")
}
