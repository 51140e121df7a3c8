// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forno/internal/delivery/http/middleware"
	"forno/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler        *handler.OrderHandler
	ProductHandler      *handler.ProductHandler
	CustomerHandler     *handler.CustomerHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	ReportHandler       *handler.ReportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler        *handler.OrderHandler
	productHandler      *handler.ProductHandler
	customerHandler     *handler.CustomerHandler
	userHandler         *handler.UserHandler
	notificationHandler *handler.NotificationHandler
	reportHandler       *handler.ReportHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:        params.OrderHandler,
		productHandler:      params.ProductHandler,
		customerHandler:     params.CustomerHandler,
		userHandler:         params.UserHandler,
		notificationHandler: params.NotificationHandler,
		reportHandler:       params.ReportHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware

	// Account routes reachable before approval: a fresh identity must be able
	// to register and watch its own approval state.
	userGroup := e.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PUT("/me/device-token", r.userHandler.SetDeviceToken)
	}

	// Staff administration requires an approved administrator.
	adminUserGroup := e.Group("/users", auth.Authenticate, auth.RequireApproved, auth.RequireAdmin)
	{
		adminUserGroup.GET("", r.userHandler.List)
		adminUserGroup.PUT("/:id", r.userHandler.Update)
		adminUserGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Everything below needs an approved staff account.
	orderGroup := e.Group("/orders", auth.Authenticate, auth.RequireApproved)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/revenue-stats", r.reportHandler.RevenueStats)
		orderGroup.PUT("/:id", r.orderHandler.Update)
		orderGroup.DELETE("/delete-all", r.orderHandler.ArchiveAll, auth.RequireAdmin)
		orderGroup.DELETE("/:id", r.orderHandler.Delete, auth.RequireAdmin)
	}

	productGroup := e.Group("/products", auth.Authenticate, auth.RequireApproved)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	customerGroup := e.Group("/customers", auth.Authenticate, auth.RequireApproved)
	{
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
		customerGroup.GET("/:id/history", r.customerHandler.History)
	}

	notificationGroup := e.Group("/notifications", auth.Authenticate, auth.RequireApproved)
	{
		notificationGroup.GET("", r.notificationHandler.ListUnread)
		notificationGroup.PUT("", r.notificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id", r.notificationHandler.MarkRead)
	}

	reportGroup := e.Group("/reports", auth.Authenticate, auth.RequireApproved, auth.RequireAdmin)
	{
		reportGroup.GET("/weekly-revenue", r.reportHandler.WeeklyRevenue)
	}
}
