package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	"github.com/matrikabazaar/marketplace-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its items in a single transaction so a
// half-written order is never visible.
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, total_amount, address, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, o.UserID, o.TotalAmount, o.Address, o.Status)
		if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
			return err
		}
		for i, item := range o.Items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO order_items (order_id, seq, product_id, quantity)
				VALUES ($1, $2, $3, $4)
			`, o.ID, i, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByUser returns the user's orders in creation order, with each
// item's product reference expanded. The join is a LEFT JOIN on purpose:
// a product that has vanished from the catalog leaves item.Product nil
// instead of breaking the listing.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, total_amount, address, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	index := make(map[string]int)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Address, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = make([]entity.OrderItem, 0)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT oi.order_id, oi.product_id, oi.quantity,
		       p.id, p.title, p.price, p.description, p.image_url, p.seller_id, p.stock, p.category, p.created_at
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE o.user_id = $1
		ORDER BY oi.order_id, oi.seq
	`, userID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID string
			item    entity.OrderItem
			// product columns are nullable because of the LEFT JOIN
			pid, title, desc, imageURL, sellerID, category *string
			price                                          *float64
			stock                                          *int
			createdAt                                      *time.Time
		)
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Quantity,
			&pid, &title, &price, &desc, &imageURL,
			&sellerID, &stock, &category, &createdAt); err != nil {
			return nil, err
		}
		if pid != nil {
			item.Product = &entity.Product{
				ID:          *pid,
				Title:       *title,
				Price:       *price,
				Description: *desc,
				ImageURL:    *imageURL,
				SellerID:    *sellerID,
				Stock:       *stock,
				Category:    *category,
				CreatedAt:   *createdAt,
			}
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
