package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	repo "github.com/matrikabazaar/marketplace-api/internal/domain/repository"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
	"github.com/matrikabazaar/marketplace-api/pkg/mailer"
)

// OrderService handles order placement and listing. Placement trusts
// the client-supplied total and does not validate items against the
// catalog; that is the contract.
type OrderService struct {
	Orders repo.OrderRepository
	Users  repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Users: users, Pub: pub, Logger: logger}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type PlaceOrderInput struct {
	Items       []OrderItemInput
	TotalAmount float64
	Address     string
}

// PlaceOrder persists a Pending order owned by the authenticated buyer
// and enqueues a confirmation email. The enqueue is best-effort: a
// broker failure never fails an already persisted order.
func (s *OrderService) PlaceOrder(ctx context.Context, identity Identity, in PlaceOrderInput) (*entity.Order, error) {
	o := &entity.Order{
		UserID:      identity.ID,
		Items:       make([]entity.OrderItem, 0, len(in.Items)),
		TotalAmount: in.TotalAmount,
		Address:     in.Address,
		Status:      entity.StatusPending,
	}
	for _, item := range in.Items {
		o.Items = append(o.Items, entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, err
	}

	s.enqueueConfirmation(ctx, o)
	return o, nil
}

// ListMyOrders returns the buyer's own orders with each item's product
// reference expanded.
func (s *OrderService) ListMyOrders(ctx context.Context, identity Identity) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, identity.ID)
}

func (s *OrderService) enqueueConfirmation(ctx context.Context, o *entity.Order) {
	if s.Pub == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, o.UserID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("order_id", o.ID).Warn("order confirmation skipped, buyer lookup failed")
		}
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateOrderConfirmation,
		Data: map[string]any{
			"Name":        u.Name,
			"OrderID":     o.ID,
			"TotalAmount": fmt.Sprintf("%.2f", o.TotalAmount),
			"Address":     o.Address,
			"ItemCount":   len(o.Items),
			"PlacedAt":    o.CreatedAt,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID).Warn("order confirmation enqueue failed")
	}
}
