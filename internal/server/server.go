package server

import (
	"nexshop/internal/client"
	"nexshop/internal/config"
	"nexshop/internal/handler"
	nexmiddleware "nexshop/internal/middleware"
	"nexshop/internal/service"
	"nexshop/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo *echo.Echo
	cfg  *config.Config

	manager *store.Manager

	storefrontHandler *handler.StorefrontHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	authHandler       *handler.AuthHandler
	adminHandler      *handler.AdminHandler
}

func NewServer(cfg *config.Config, manager *store.Manager, discordClient client.DiscordClient, checkoutService service.CheckoutService) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:              e,
		cfg:               cfg,
		manager:           manager,
		storefrontHandler: handler.NewStorefrontHandler(),
		cartHandler:       handler.NewCartHandler(),
		checkoutHandler:   handler.NewCheckoutHandler(checkoutService),
		authHandler:       handler.NewAuthHandler(discordClient, cfg.Auth, cfg.BaseURL),
		adminHandler:      handler.NewAdminHandler(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status": "ok",
		})
	})

	// Every tenant route runs behind the session middleware, which resolves
	// the per-session store from the X-Session-Token header.
	t := api.Group("/t/:tenant", nexmiddleware.Session(s.manager))

	// Storefront
	t.GET("/config", s.storefrontHandler.GetConfig)
	t.GET("/categories", s.storefrontHandler.ListCategories)
	t.GET("/products", s.storefrontHandler.ListProducts)
	t.GET("/products/:slug", s.storefrontHandler.GetProduct)
	t.GET("/plans", s.storefrontHandler.GetPlans)

	// Cart
	t.GET("/cart", s.cartHandler.GetCart)
	t.DELETE("/cart", s.cartHandler.Clear)
	t.POST("/cart/items", s.cartHandler.AddItem)
	t.PATCH("/cart/items", s.cartHandler.UpdateItem)
	t.DELETE("/cart/items", s.cartHandler.RemoveItem)
	t.POST("/cart/coupon", s.cartHandler.ApplyCoupon)

	// Checkout & orders
	t.POST("/checkout", s.checkoutHandler.Checkout)
	t.GET("/orders", s.checkoutHandler.ListOrdersByEmail)
	t.GET("/orders/mine", s.checkoutHandler.MyOrders, nexmiddleware.CustomerAuth(s.cfg.Auth.JWTSecret))
	t.GET("/orders/:id", s.checkoutHandler.GetOrder)

	// Customer auth
	auth := t.Group("/auth")
	auth.POST("/google", s.authHandler.GoogleLogin)
	auth.GET("/discord/authorize", s.authHandler.DiscordAuthorize)
	auth.GET("/discord/callback", s.authHandler.DiscordCallback)
	auth.POST("/logout", s.authHandler.Logout)
	auth.GET("/me", s.authHandler.Me)

	// Back office
	admin := t.Group("/admin", nexmiddleware.AdminAuth(s.cfg.Auth.AdminToken))

	admin.GET("/dashboard", s.adminHandler.Dashboard)

	admin.GET("/categories", s.adminHandler.ListCategories)
	admin.POST("/categories", s.adminHandler.CreateCategory)
	admin.PATCH("/categories/:id", s.adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", s.adminHandler.DeleteCategory)

	admin.GET("/products", s.adminHandler.ListProducts)
	admin.POST("/products", s.adminHandler.CreateProduct)
	admin.GET("/products/:id", s.adminHandler.GetProduct)
	admin.PATCH("/products/:id", s.adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.adminHandler.DeleteProduct)
	admin.POST("/products/:id/duplicate", s.adminHandler.DuplicateProduct)

	admin.GET("/orders", s.adminHandler.ListOrders)
	admin.PATCH("/orders/bulk-status", s.adminHandler.BulkUpdateOrderStatus)
	admin.GET("/orders/:id", s.adminHandler.GetOrder)
	admin.PATCH("/orders/:id/status", s.adminHandler.UpdateOrderStatus)

	admin.GET("/coupons", s.adminHandler.ListCoupons)
	admin.GET("/customers", s.adminHandler.ListCustomers)

	admin.GET("/settings/branding", s.adminHandler.GetBranding)
	admin.PATCH("/settings/branding", s.adminHandler.UpdateBranding)
	admin.GET("/settings/theme", s.adminHandler.GetThemeTokens)
	admin.PATCH("/settings/theme", s.adminHandler.UpdateThemeTokens)
	admin.GET("/settings/product-card", s.adminHandler.GetProductCard)
	admin.PATCH("/settings/product-card", s.adminHandler.UpdateProductCard)
	admin.GET("/settings/copy", s.adminHandler.GetCopy)
	admin.PATCH("/settings/copy", s.adminHandler.UpdateCopy)
	admin.GET("/settings/domains", s.adminHandler.GetDomains)
	admin.PATCH("/settings/domains", s.adminHandler.UpdateDomains)
	admin.GET("/settings/store", s.adminHandler.GetSettings)
	admin.PATCH("/settings/store", s.adminHandler.UpdateSettings)

	admin.GET("/subscription", s.adminHandler.GetSubscription)
	admin.POST("/subscription/change-plan", s.adminHandler.ChangePlan)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
