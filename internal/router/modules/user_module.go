package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martify/martify/internal/container"
	handlers "github.com/martify/martify/internal/interface/http"
	"github.com/martify/martify/internal/interface/middleware"
	"github.com/martify/martify/pkg/helpers"
)

// UserModule wires the admin-only user management routes.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/users")
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
