package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/matrikabazaar/marketplace-api/internal/application"
	"github.com/matrikabazaar/marketplace-api/pkg/response"
	"github.com/matrikabazaar/marketplace-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// createProductRequest accepts only the enumerated catalog fields; a
// client-supplied seller reference has nowhere to land.
type createProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl" binding:"omitempty,url"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category"`
}

// Create POST /api/products (seller only)
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), identityFrom(c), application.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product create failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "product creation failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "product created")
}

// List GET /api/products (public)
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	response.Success(c, http.StatusOK, products, "products")
}
