package router

import (
	"github.com/matrikabazaar/marketplace-api/internal/application"
	"github.com/matrikabazaar/marketplace-api/internal/container"
	pginfra "github.com/matrikabazaar/marketplace-api/internal/infrastructure/postgres"
	handlers "github.com/matrikabazaar/marketplace-api/internal/interface/http"
	"github.com/matrikabazaar/marketplace-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	productRepo := pginfra.NewProductRepository(container.GetPGPool())
	orderRepo := pginfra.NewOrderRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetLogger())
	catalogSvc := application.NewCatalogService(productRepo, container.GetRedis(), container.GetLogger())
	orderSvc := application.NewOrderService(orderRepo, userRepo, container.GetRabbitPub(), container.GetLogger())

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, container.GetLogger())))
	r.Add(modules.NewCatalogModule(handlers.NewProductHandler(catalogSvc, container.GetLogger()), container.GetJWT()))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, container.GetLogger()), container.GetJWT()))
}
