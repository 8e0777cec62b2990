// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	reviewHandler   *handler.ReviewHandler
	categoryHandler *handler.CategoryHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		reviewHandler:   params.ReviewHandler,
		categoryHandler: params.CategoryHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{authenticate, r.authMiddleware.RequireAdmin}

	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
		authGroup.PUT("/update", r.authHandler.UpdateProfile, authenticate)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/featured", r.productHandler.Featured)
		productsGroup.GET("/category/:categoryId", r.productHandler.ListByCategory)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.GET("/:id/qrcode", r.productHandler.QRCode)
		productsGroup.GET("/:id/reviews", r.reviewHandler.List)
		productsGroup.POST("/:id/reviews", r.reviewHandler.Create, authenticate)

		productsGroup.POST("", r.productHandler.Create, adminOnly...)
		productsGroup.PUT("/:id", r.productHandler.Update, adminOnly...)
		productsGroup.DELETE("/:id", r.productHandler.Delete, adminOnly...)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.GET("/:id", r.categoryHandler.Get)
		categoriesGroup.GET("/:id/products", r.categoryHandler.Products)

		categoriesGroup.POST("", r.categoryHandler.Create, adminOnly...)
		categoriesGroup.PUT("/:id", r.categoryHandler.Update, adminOnly...)
		categoriesGroup.DELETE("/:id", r.categoryHandler.Delete, adminOnly...)
	}

	cartGroup := api.Group("/cart")
	cartGroup.Use(authenticate)
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.POST("/add", r.cartHandler.Add)
		cartGroup.PUT("/:id", r.cartHandler.Update)
		cartGroup.PUT("/update/:id", r.cartHandler.Update)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.DELETE("/:id", r.cartHandler.Remove)
		cartGroup.DELETE("/remove/:id", r.cartHandler.Remove)
	}

	ordersGroup := api.Group("/orders")
	ordersGroup.Use(authenticate)
	{
		ordersGroup.GET("", r.orderHandler.List)
		ordersGroup.POST("", r.orderHandler.Create)
		ordersGroup.POST("/checkout", r.orderHandler.Checkout)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateStatus)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(adminOnly...)
	{
		adminGroup.GET("/customers", r.adminHandler.Customers)
		adminGroup.GET("/sales-report", r.adminHandler.SalesReport)
		adminGroup.GET("/monthly-sales", r.adminHandler.MonthlySales)
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.PUT("/users/:id/status", r.adminHandler.SetUserStatus)
	}
}
