package entity

import "time"

// OrderStatus is the lifecycle state of an order. Orders are created
// Pending; no transition logic exists.
type OrderStatus string

const StatusPending OrderStatus = "Pending"

// OrderItem references a catalog product by id. Product is the expanded
// catalog record when listing orders; it stays nil when the referenced
// product no longer exists.
type OrderItem struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// Order is a transaction record owned by exactly one buyer, fixed at
// creation. TotalAmount is taken verbatim from the request.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Address     string      `json:"address"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
