package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martify/martify/internal/container"
	handlers "github.com/martify/martify/internal/interface/http"
	"github.com/martify/martify/internal/interface/middleware"
	"github.com/martify/martify/pkg/helpers"
)

// ListingModule wires public listing reads and search, authenticated
// creation, and owner-or-admin mutations. Ownership itself is enforced in
// the listing service, not here.
type ListingModule struct {
	Handler *handlers.ListingHandler
	JWT     *helpers.JWTManager
}

func NewListingModule(h *handlers.ListingHandler, jwt *helpers.JWTManager) *ListingModule {
	return &ListingModule{Handler: h, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/listings", m.Handler.List)
	rg.GET("/listings/search", m.Handler.Search)
	rg.GET("/listings/:id", m.Handler.Get)

	// Authenticated writes
	auth := rg.Group("/listings")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/gallery", m.Handler.UploadGalleryImage)
	}
}
