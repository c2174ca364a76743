package router

import (
	"github.com/martify/martify/internal/application"
	"github.com/martify/martify/internal/container"
	pginfra "github.com/martify/martify/internal/infrastructure/postgres"
	handlers "github.com/martify/martify/internal/interface/http"
	"github.com/martify/martify/internal/router/modules"
)

// InitModules builds repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	types := pginfra.NewListingTypeRepository(pool)
	listings := pginfra.NewListingRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRabbitPub(), logger, cfg.AppName)
	userSvc := application.NewUserService(users)
	catalogSvc := application.NewCatalogService(types)
	listingSvc := application.NewListingService(listings, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESListingsIndex, logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewCatalogModule(handlers.NewListingTypeHandler(catalogSvc, logger), container.GetJWT()))
	r.Add(modules.NewListingModule(handlers.NewListingHandler(listingSvc, logger), container.GetJWT()))
}
