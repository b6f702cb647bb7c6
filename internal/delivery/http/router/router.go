// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sokoo/internal/delivery/http/middleware"
	"sokoo/internal/delivery/http/router/handler"
	"sokoo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	DirectoryHandler  *handler.DirectoryHandler
	ShopHandler       *handler.ShopHandler
	BillingHandler    *handler.BillingHandler
	NavigationHandler *handler.NavigationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	directoryHandler  *handler.DirectoryHandler
	shopHandler       *handler.ShopHandler
	billingHandler    *handler.BillingHandler
	navigationHandler *handler.NavigationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		directoryHandler:  params.DirectoryHandler,
		shopHandler:       params.ShopHandler,
		billingHandler:    params.BillingHandler,
		navigationHandler: params.NavigationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// The public directory; an authenticated admin sees every status.
	e.GET("/shops", r.directoryHandler.ListShops, r.authMiddleware.AuthenticateOptional)
	e.GET("/shops/:id", r.shopHandler.Get, r.authMiddleware.AuthenticateOptional)

	// Shop and billing routes that require authentication. Ownership and
	// role checks beyond "logged in" live in the use cases.
	shopGroup := e.Group("/shops")
	shopGroup.Use(r.authMiddleware.Authenticate)
	{
		shopGroup.POST("", r.shopHandler.Register)
		shopGroup.PATCH("/:id", r.shopHandler.Update)
		shopGroup.GET("/:id/payments", r.billingHandler.History)
		shopGroup.POST("/:id/payments/:paymentID/pay", r.billingHandler.Settle)
		shopGroup.GET("/:id/reminders", r.billingHandler.ReminderHistory)
	}

	// Navigation menu for the authenticated caller's role
	e.GET("/navigation", r.navigationHandler.Menu, r.authMiddleware.Authenticate)

	// Back-office routes that require the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/shops/:id/approve", r.shopHandler.Approve)
		adminGroup.POST("/shops/:id/reject", r.shopHandler.Reject)
		adminGroup.DELETE("/shops/:id", r.shopHandler.Delete)
		adminGroup.POST("/shops/:id/payments/:paymentID/remind", r.billingHandler.Remind)
		adminGroup.POST("/billing/sweep", r.billingHandler.SweepOverdue)
		adminGroup.GET("/users", r.accountHandler.ListUsers)
	}
}
