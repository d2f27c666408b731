package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matrikabazaar/marketplace-api/internal/container"
	handlers "github.com/matrikabazaar/marketplace-api/internal/interface/http"
	"github.com/matrikabazaar/marketplace-api/internal/interface/middleware"
)

// AuthModule wires the public registration and login routes.
// Both carry per-IP rate limits; credential endpoints are the obvious
// brute-force target.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
