package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/matrikabazaar/marketplace-api/internal/application"
	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	"github.com/matrikabazaar/marketplace-api/internal/interface/middleware"
	"github.com/matrikabazaar/marketplace-api/pkg/response"
	"github.com/matrikabazaar/marketplace-api/pkg/validation"
)

// identityFrom rebuilds the authenticated identity the token middleware
// stored in the request context.
func identityFrom(c *gin.Context) application.Identity {
	return application.Identity{
		ID:   c.GetString(middleware.CtxUserIDKey),
		Role: entity.Role(c.GetString(middleware.CtxUserRoleKey)),
	}
}

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type orderItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	Items       []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" binding:"gte=0"`
	Address     string             `json:"address" binding:"required"`
}

// Place POST /api/orders (any authenticated identity)
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.PlaceOrderInput{
		Items:       make([]application.OrderItemInput, 0, len(req.Items)),
		TotalAmount: req.TotalAmount,
		Address:     req.Address,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, application.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	o, err := h.Svc.PlaceOrder(c.Request.Context(), identityFrom(c), in)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("order create failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "order placement failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"order": o}, "order placed successfully")
}

// ListMine GET /api/orders (any authenticated identity)
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListMyOrders(c.Request.Context(), identityFrom(c))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("order list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders")
}
