package repository

import (
	"context"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
)

// OrderRepository defines storage operations for orders.
// Create persists the order together with its items atomically.
// ListByUser expands each item's product reference; items whose product
// no longer exists keep a nil Product rather than failing the listing.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
}
