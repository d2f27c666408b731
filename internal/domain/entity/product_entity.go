package entity

import "time"

// Product is a catalog entry. SellerID is fixed at creation from the
// authenticated identity and is never taken from the request body.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	SellerID    string    `json:"sellerId"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
