package repository

import (
	"context"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
)

// ProductRepository defines storage operations for catalog entries.
// List returns the whole catalog in creation order.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
}
