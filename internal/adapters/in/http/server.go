// Package http exposes the marketplace over a JSON API. Handlers translate
// requests into commands and queries, map domain errors onto HTTP statuses
// and never leak persistence details to the client.
package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions ports.SessionStore

	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	loginHandler          commands.LoginCommandHandler
	logoutHandler         commands.LogoutCommandHandler
	updateCartHandler     commands.UpdateCartCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	takeOrderHandler      commands.TakeOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	updateSettingsHandler commands.UpdateSettingsCommandHandler
	addAddressHandler     commands.AddAddressCommandHandler
	setFavoriteHandler    commands.SetFavoriteCommandHandler
	createCommerceHandler commands.CreateCommerceCommandHandler
	createProductHandler  commands.CreateProductCommandHandler

	// Query handlers
	getClientOrdersHandler    queries.GetClientOrdersQueryHandler
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getCommercesHandler       queries.GetCommercesQueryHandler
	getCommerceCatalogHandler queries.GetCommerceCatalogQueryHandler
	getClientAddressesHandler queries.GetClientAddressesQueryHandler
	getSettingsHandler        queries.GetSettingsQueryHandler
}

// ServerHandlers bundles the use case handlers a Server dispatches to.
type ServerHandlers struct {
	RegisterUser   commands.RegisterUserCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	UpdateCart     commands.UpdateCartCommandHandler
	Checkout       commands.CheckoutCommandHandler
	TakeOrder      commands.TakeOrderCommandHandler
	CompleteOrder  commands.CompleteOrderCommandHandler
	UpdateSettings commands.UpdateSettingsCommandHandler
	AddAddress     commands.AddAddressCommandHandler
	SetFavorite    commands.SetFavoriteCommandHandler
	CreateCommerce commands.CreateCommerceCommandHandler
	CreateProduct  commands.CreateProductCommandHandler

	GetClientOrders    queries.GetClientOrdersQueryHandler
	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetCommerces       queries.GetCommercesQueryHandler
	GetCommerceCatalog queries.GetCommerceCatalogQueryHandler
	GetClientAddresses queries.GetClientAddressesQueryHandler
	GetSettings        queries.GetSettingsQueryHandler
}

// NewServer creates a new HTTP server with the required session store and
// use case handlers.
func NewServer(sessions ports.SessionStore, handlers ServerHandlers) *Server {
	return &Server{
		sessions:                  sessions,
		registerUserHandler:       handlers.RegisterUser,
		loginHandler:              handlers.Login,
		logoutHandler:             handlers.Logout,
		updateCartHandler:         handlers.UpdateCart,
		checkoutHandler:           handlers.Checkout,
		takeOrderHandler:          handlers.TakeOrder,
		completeOrderHandler:      handlers.CompleteOrder,
		updateSettingsHandler:     handlers.UpdateSettings,
		addAddressHandler:         handlers.AddAddress,
		setFavoriteHandler:        handlers.SetFavorite,
		createCommerceHandler:     handlers.CreateCommerce,
		createProductHandler:      handlers.CreateProduct,
		getClientOrdersHandler:    handlers.GetClientOrders,
		getAvailableOrdersHandler: handlers.GetAvailableOrders,
		getCommercesHandler:       handlers.GetCommerces,
		getCommerceCatalogHandler: handlers.GetCommerceCatalog,
		getClientAddressesHandler: handlers.GetClientAddresses,
		getSettingsHandler:        handlers.GetSettings,
	}
}

// RegisterRoutes mounts the API under /api/v1. Role checks happen at the
// route boundary; handlers can assume an authenticated session of the
// right role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)

	api.POST("/cart", s.UpdateCart, s.requireRole(user.RoleClient))
	api.POST("/orders", s.Checkout, s.requireRole(user.RoleClient))
	api.GET("/orders", s.GetClientOrders, s.requireRole(user.RoleClient))
	api.GET("/addresses", s.GetAddresses, s.requireRole(user.RoleClient))
	api.POST("/addresses", s.AddAddress, s.requireRole(user.RoleClient))
	api.POST("/favorites", s.SetFavorite, s.requireRole(user.RoleClient))
	api.GET("/commerces", s.GetCommerces, s.requireRole(user.RoleClient))
	api.GET("/commerces/:id/catalog", s.GetCommerceCatalog, s.requireRole(user.RoleClient))

	api.GET("/orders/available", s.GetAvailableOrders, s.requireRole(user.RoleCourier))
	api.POST("/orders/:id/take", s.TakeOrder, s.requireRole(user.RoleCourier))
	api.POST("/orders/:id/complete", s.CompleteOrder, s.requireRole(user.RoleCourier))

	api.POST("/commerces", s.CreateCommerce, s.requireRole(user.RoleCommerce))
	api.POST("/commerces/:id/products", s.CreateProduct, s.requireRole(user.RoleCommerce))

	api.GET("/admin/settings", s.GetSettings, s.requireRole(user.RoleAdmin))
	api.PUT("/admin/settings", s.UpdateSettings, s.requireRole(user.RoleAdmin))
}
