package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martify/martify/internal/container"
	handlers "github.com/martify/martify/internal/interface/http"
	"github.com/martify/martify/internal/interface/middleware"
	"github.com/martify/martify/pkg/helpers"
)

// AuthModule wires the public signup/login endpoints and the authenticated
// profile endpoint.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting: signup and login are the abuse magnets
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
