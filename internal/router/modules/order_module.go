package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matrikabazaar/marketplace-api/internal/container"
	handlers "github.com/matrikabazaar/marketplace-api/internal/interface/http"
	"github.com/matrikabazaar/marketplace-api/internal/interface/middleware"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
)

// OrderModule wires order routes. Both require authentication only; no
// role restriction applies to buying.
type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(
		middleware.TokenAuth(m.JWT),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.POST("/orders", m.Handler.Place)
		auth.GET("/orders", m.Handler.ListMine)
	}
}
