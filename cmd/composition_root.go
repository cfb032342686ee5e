package cmd

import (
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/adapters/out/postgres/commercerepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/settingsrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	redisout "marketplace/internal/adapters/out/redis/cartstore"
	"marketplace/internal/adapters/out/redis/sessionstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers
// share one GORM connection pool and one Redis client; unit of work
// instances are created per operation by the factory.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	cartStore    ports.CartStore
	sessionStore ports.SessionStore
	userRepo     ports.UserRepository
	addressRepo  ports.AddressRepository
	commerceRepo ports.CommerceRepository
	productRepo  ports.ProductRepository
	settingsRepo ports.SettingsRepository
}

// NewCompositionRoot builds the object graph from the opened database and
// Redis connections.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:    redisout.NewRedisCartStore(redisClient, config.CartTTL),
		sessionStore: sessionstore.NewRedisSessionStore(redisClient, config.SessionTTL),
		userRepo:     userrepo.NewGormUserRepository(gormDB),
		addressRepo:  addressrepo.NewGormAddressRepository(gormDB),
		commerceRepo: commercerepo.NewGormCommerceRepository(gormDB),
		productRepo:  productrepo.NewGormProductRepository(gormDB),
		settingsRepo: settingsrepo.NewGormSettingsRepository(gormDB),
	}
}

// SessionStore exposes the session store for the HTTP middleware.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

// CreateServerHandlers bundles every use case handler for the HTTP server.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		Login:          c.CreateLoginCommandHandler(),
		Logout:         c.CreateLogoutCommandHandler(),
		UpdateCart:     c.CreateUpdateCartCommandHandler(),
		Checkout:       c.CreateCheckoutCommandHandler(),
		TakeOrder:      c.CreateTakeOrderCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		UpdateSettings: c.CreateUpdateSettingsCommandHandler(),
		AddAddress:     c.CreateAddAddressCommandHandler(),
		SetFavorite:    c.CreateSetFavoriteCommandHandler(),
		CreateCommerce: c.CreateCreateCommerceCommandHandler(),
		CreateProduct:  c.CreateCreateProductCommandHandler(),

		GetClientOrders:    c.CreateGetClientOrdersQueryHandler(),
		GetAvailableOrders: c.CreateGetAvailableOrdersQueryHandler(),
		GetCommerces:       c.CreateGetCommercesQueryHandler(),
		GetCommerceCatalog: c.CreateGetCommerceCatalogQueryHandler(),
		GetClientAddresses: c.CreateGetClientAddressesQueryHandler(),
		GetSettings:        c.CreateGetSettingsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	courierRepo := c.uowFactory.Create().CourierRepository()
	return commands.NewRegisterUserCommandHandler(c.userRepo, courierRepo)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userRepo, c.sessionStore)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionStore, c.cartStore)
}

func (c *CompositionRoot) CreateUpdateCartCommandHandler() commands.UpdateCartCommandHandler {
	return commands.NewUpdateCartCommandHandler(c.cartStore, c.productRepo)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(c.cartStore, c.addressRepo, c.settingsRepo, f)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	return commands.NewUpdateSettingsCommandHandler(c.settingsRepo)
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	return commands.NewAddAddressCommandHandler(c.addressRepo)
}

func (c *CompositionRoot) CreateSetFavoriteCommandHandler() commands.SetFavoriteCommandHandler {
	return commands.NewSetFavoriteCommandHandler(c.commerceRepo)
}

func (c *CompositionRoot) CreateCreateCommerceCommandHandler() commands.CreateCommerceCommandHandler {
	return commands.NewCreateCommerceCommandHandler(c.commerceRepo)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productRepo, c.commerceRepo)
}

func (c *CompositionRoot) CreateReconcileCouriersCommandHandler() commands.ReconcileCouriersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileCouriersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommercesQueryHandler() queries.GetCommercesQueryHandler {
	return queries.NewGetCommercesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommerceCatalogQueryHandler() queries.GetCommerceCatalogQueryHandler {
	return queries.NewGetCommerceCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientAddressesQueryHandler() queries.GetClientAddressesQueryHandler {
	return queries.NewGetClientAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.settingsRepo)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
