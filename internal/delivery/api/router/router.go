// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/domain/entity"
	"inventory/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	ProductHandler *handler.ProductHandler
	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.ServerMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	productHandler *handler.ProductHandler
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.ServerMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		productHandler: params.ProductHandler,
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and scrape endpoints
	e.GET("/health", handler.HealthCheck)
	if r.metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalog
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)

	// Catalog management requires a product-managing role
	manageProducts := e.Group("/products")
	manageProducts.Use(r.authMiddleware.Authenticate)
	manageProducts.Use(r.authMiddleware.RequireRoles(entity.RoleSeller, entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		manageProducts.GET("/mine", r.productHandler.MyProducts)
		manageProducts.POST("", r.productHandler.CreateProduct)
		manageProducts.PUT("/:id", r.productHandler.UpdateProduct)
		manageProducts.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// Orders are available to every authenticated role; visibility is decided per order.
	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/pay", r.orderHandler.PayOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.CancelOrder)
		ordersGroup.GET("/:id/receipt.png", r.orderHandler.GetReceiptQR)
	}

	// SuperAdmin only
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleSuperAdmin))
	{
		adminGroup.GET("/metrics", r.adminHandler.SellerMetrics)
		adminGroup.GET("/users", r.adminHandler.ListStaff)
		adminGroup.POST("/users/:id/deactivate", r.adminHandler.Deactivate)
		adminGroup.POST("/users/:id/activate", r.adminHandler.Activate)
		adminGroup.POST("/users/:id/promote", r.adminHandler.Promote)
		adminGroup.POST("/users/:id/demote", r.adminHandler.Demote)
	}
}
