package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martify/martify/internal/container"
	handlers "github.com/martify/martify/internal/interface/http"
	"github.com/martify/martify/internal/interface/middleware"
	"github.com/martify/martify/pkg/helpers"
)

// CatalogModule wires the admin-only listing-type schema routes.
type CatalogModule struct {
	Handler *handlers.ListingTypeHandler
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.ListingTypeHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/listing-types")
	admin.Use(
		middleware.Auth(m.JWT),
		middleware.AdminOnly(),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		admin.GET("", m.Handler.List)
		admin.POST("", m.Handler.Create)
		admin.GET("/:id", m.Handler.Get)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
