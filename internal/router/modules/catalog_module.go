package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matrikabazaar/marketplace-api/internal/container"
	handlers "github.com/matrikabazaar/marketplace-api/internal/interface/http"
	"github.com/matrikabazaar/marketplace-api/internal/interface/middleware"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
)

// CatalogModule wires product routes.
// Public: GET /api/products
// Protected (seller only): POST /api/products
type CatalogModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)

	sellers := rg.Group("/")
	sellers.Use(
		middleware.TokenAuth(m.JWT),
		middleware.RequireRole("seller", "only sellers can add products"),
		middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()),
	)
	{
		sellers.POST("/products", m.Handler.Create)
	}
}
