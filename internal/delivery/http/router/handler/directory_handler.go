package handler

import (
	"log/slog"
	"net/http"

	"sokoo/internal/delivery/http/response"
	"sokoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the public shop directory.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListShops handles the directory listing request. Anonymous callers browse
// as customers; an authenticated admin may query any status.
func (h *DirectoryHandler) ListShops(c echo.Context) error {
	var query usecase.DirectoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directory query")
	}

	output, err := h.uc.ListShops(c.Request().Context(), query, viewerRole(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shops retrieved successfully")
}
