package application

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
)

type mockProductRepository struct {
	products  []entity.Product
	createErr error
	listErr   error
}

func (m *mockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = "product-" + strconv.Itoa(len(m.products)+1)
	p.CreatedAt = time.Now()
	m.products = append(m.products, *p)
	return nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]entity.Product(nil), m.products...), nil
}

func TestCatalogService_CreateProduct(t *testing.T) {
	m := &mockProductRepository{}
	svc := NewCatalogService(m, nil, nil)
	seller := Identity{ID: "seller-1", Role: entity.RoleSeller}

	p, err := svc.CreateProduct(context.Background(), seller, CreateProductInput{
		Title:       "Brass Oil Lamp",
		Price:       39.0,
		Description: "Hand-cast brass diya",
		ImageURL:    "https://img.example.com/lamp.jpg",
		Stock:       5,
		Category:    "home",
	})
	require.NoError(t, err)

	// Ownership comes from the identity, never the payload.
	assert.Equal(t, "seller-1", p.SellerID)
	assert.Equal(t, "Brass Oil Lamp", p.Title)
	assert.Equal(t, 39.0, p.Price)
	assert.Equal(t, 5, p.Stock)
	assert.NotEmpty(t, p.ID)
}

func TestCatalogService_CreateProduct_StoreError(t *testing.T) {
	m := &mockProductRepository{createErr: errors.New("boom")}
	svc := NewCatalogService(m, nil, nil)

	_, err := svc.CreateProduct(context.Background(), Identity{ID: "seller-1"}, CreateProductInput{Title: "x"})
	assert.Error(t, err)
}

func TestCatalogService_ListProducts(t *testing.T) {
	m := &mockProductRepository{}
	svc := NewCatalogService(m, nil, nil)

	// Empty catalog yields an empty sequence, not nil row handling errors.
	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)

	seller := Identity{ID: "seller-1", Role: entity.RoleSeller}
	_, err = svc.CreateProduct(context.Background(), seller, CreateProductInput{Title: "P1", Price: 10})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), seller, CreateProductInput{Title: "P2", Price: 20})
	require.NoError(t, err)

	products, err = svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].Title)
	assert.Equal(t, "P2", products[1].Title)
}
