// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	BusinessHandler *handler.BusinessHandler
	CouponHandler   *handler.CouponHandler
	AuthHandler     *handler.AuthHandler
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	businessHandler *handler.BusinessHandler
	couponHandler   *handler.CouponHandler
	authHandler     *handler.AuthHandler
	orderHandler    *handler.OrderHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		businessHandler: params.BusinessHandler,
		couponHandler:   params.CouponHandler,
		authHandler:     params.AuthHandler,
		orderHandler:    params.OrderHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes, no authentication
	publicGroup := e.Group("/api/public")
	{
		publicGroup.POST("/checkout", r.checkoutHandler.PlaceOrder)
		publicGroup.POST("/coupons/validate", r.couponHandler.ValidateCoupon)
		publicGroup.GET("/businesses/:slug", r.businessHandler.GetStorefront)
		publicGroup.GET("/businesses/:slug/qr", r.businessHandler.GetStorefrontQR)
	}

	// Vertical alias kept for fastfood storefront clients, which send
	// delivery_fee and customer_note instead of the unified field names
	e.POST("/api/fastfood/orders", r.checkoutHandler.PlaceFastfoodOrder)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Panel routes that require authentication; the tenant scope comes
	// from the access token
	panelGroup := e.Group("/panel")
	panelGroup.Use(r.authMiddleware.Authenticate)
	{
		panelGroup.GET("/orders", r.orderHandler.ListOrders)
		panelGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		panelGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		panelGroup.PUT("/orders/:id/note", r.orderHandler.UpdateInternalNote)
		panelGroup.DELETE("/orders/:id", r.orderHandler.DeleteOrder, r.authMiddleware.RequireRole("owner"))

		panelGroup.GET("/products", r.productHandler.ListProducts)
		panelGroup.POST("/products", r.productHandler.CreateProduct)
		panelGroup.GET("/products/:id", r.productHandler.GetProduct)
		panelGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		panelGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		panelGroup.GET("/coupons", r.couponHandler.ListCoupons)
		panelGroup.POST("/coupons", r.couponHandler.CreateCoupon)
		panelGroup.GET("/coupons/:id", r.couponHandler.GetCoupon)
		panelGroup.PUT("/coupons/:id", r.couponHandler.UpdateCoupon)
		panelGroup.DELETE("/coupons/:id", r.couponHandler.DeleteCoupon, r.authMiddleware.RequireRole("owner"))
		panelGroup.GET("/coupons/:id/usage", r.couponHandler.GetCouponUsage)
	}
}
