package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	"github.com/matrikabazaar/marketplace-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (title, price, description, image_url, seller_id, stock, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.Title, p.Price, p.Description, p.ImageURL, p.SellerID, p.Stock, p.Category)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, price, description, image_url, seller_id, stock, category, created_at
		FROM products
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.ImageURL,
			&p.SellerID, &p.Stock, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
