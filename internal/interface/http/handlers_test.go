package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrikabazaar/marketplace-api/internal/application"
	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	repo "github.com/matrikabazaar/marketplace-api/internal/domain/repository"
	"github.com/matrikabazaar/marketplace-api/internal/interface/middleware"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
	"github.com/matrikabazaar/marketplace-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*entity.User{}}
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type stubProductRepo struct {
	products []entity.Product
}

// IDs are minted UUID-shaped, like the uuid-keyed tables they stand in
// for; order item binding validates product references as UUIDs.
func (s *stubProductRepo) Create(ctx context.Context, p *entity.Product) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.products = append(s.products, *p)
	return nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	return append([]entity.Product(nil), s.products...), nil
}

type stubOrderRepo struct {
	orders   []entity.Order
	products *stubProductRepo
}

func (s *stubOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	s.orders = append(s.orders, *o)
	return nil
}

// ListByUser mimics the storage join: items resolve to the product when
// it exists and keep a nil expansion otherwise.
func (s *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		cp := o
		cp.Items = append([]entity.OrderItem(nil), o.Items...)
		for i := range cp.Items {
			for _, p := range s.products.products {
				if p.ID == cp.Items[i].ProductID {
					pc := p
					cp.Items[i].Product = &pc
				}
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

type testEnv struct {
	router   *gin.Engine
	jwt      *helpers.JWTManager
	users    *stubUserRepo
	products *stubProductRepo
	orders   *stubOrderRepo
}

// newTestEnv builds the API surface with stub storage and no redis or
// broker, mirroring the production route layout.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newStubUserRepo()
	products := &stubProductRepo{}
	orders := &stubOrderRepo{products: products}
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	authSvc := application.NewAuthService(users, jwt, nil)
	catalogSvc := application.NewCatalogService(products, nil, nil)
	orderSvc := application.NewOrderService(orders, users, nil, nil)

	r := gin.New()
	api := r.Group("/api")
	authHandler := NewAuthHandler(authSvc, nil)
	productHandler := NewProductHandler(catalogSvc, nil)
	orderHandler := NewOrderHandler(orderSvc, nil)

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/products", productHandler.List)
	api.POST("/products",
		middleware.TokenAuth(jwt),
		middleware.RequireRole("seller", "only sellers can add products"),
		productHandler.Create,
	)
	api.POST("/orders", middleware.TokenAuth(jwt), orderHandler.Place)
	api.GET("/orders", middleware.TokenAuth(jwt), orderHandler.ListMine)

	return &testEnv{router: r, jwt: jwt, users: users, products: products, orders: orders}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerAndLogin(t *testing.T, name, email, role string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name": "Asha", "email": "asha@x.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "user registered successfully")

	t.Run("duplicate email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/register", "", gin.H{
			"name": "Other", "email": "asha@x.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user already exists")
	})

	t.Run("invalid payload", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/register", "", gin.H{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/register", "", gin.H{
			"name": "X", "email": "x@x.com", "password": "secret123", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name": "Asha", "email": "a@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("success returns token and user without the hash", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/login", "", gin.H{"email": "a@x.com", "password": "secret123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Token string      `json:"token"`
				User  entity.User `json:"user"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "a@x.com", resp.Data.User.Email)
		assert.Equal(t, entity.RoleUser, resp.Data.User.Role)
		assert.NotContains(t, w.Body.String(), "password")

		claims, err := env.jwt.Parse(resp.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.Data.User.ID, claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/login", "", gin.H{"email": "nobody@x.com", "password": "secret123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/login", "", gin.H{"email": "a@x.com", "password": "wrong-secret"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})
}

func TestCreateProduct_AccessControl(t *testing.T) {
	env := newTestEnv(t)
	product := gin.H{
		"title": "Handwoven Scarf", "price": 24.5, "stock": 12, "category": "clothing",
	}

	t.Run("no token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/products", "", product)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no token provided")
	})

	t.Run("buyer role forbidden", func(t *testing.T) {
		token := env.registerAndLogin(t, "Buyer", "buyer@x.com", "user")
		w := env.do(t, http.MethodPost, "/api/products", token, product)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "only sellers can add products")
	})

	t.Run("seller creates, ownership from token", func(t *testing.T) {
		token := env.registerAndLogin(t, "Seller", "seller@x.com", "seller")
		claims, err := env.jwt.Parse(token)
		require.NoError(t, err)

		// A client-supplied sellerId has nowhere to land and is ignored.
		body := gin.H{
			"title": "Handwoven Scarf", "price": 24.5, "stock": 12,
			"category": "clothing", "sellerId": "someone-else",
		}
		w := env.do(t, http.MethodPost, "/api/products", token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Data entity.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, claims.UserID, resp.Data.SellerID)
		assert.Equal(t, "Handwoven Scarf", resp.Data.Title)
	})
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty struct {
		Data []entity.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Empty(t, empty.Data)

	token := env.registerAndLogin(t, "Seller", "seller@x.com", "seller")
	for _, title := range []string{"P1", "P2"} {
		w := env.do(t, http.MethodPost, "/api/products", token, gin.H{"title": title, "price": 10.0, "stock": 1})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data []entity.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 2)
	assert.Equal(t, "P1", listed.Data[0].Title)
	assert.Equal(t, "P2", listed.Data[1].Title)

	// Response shapes are camelCase throughout.
	assert.Contains(t, w.Body.String(), `"createdAt"`)
	assert.NotContains(t, w.Body.String(), `"created_at"`)
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "Buyer", "buyer@x.com", "user")
	claims, err := env.jwt.Parse(token)
	require.NoError(t, err)

	productID := "7b1c6a1e-49c5-45a0-8e0a-6a1a1a2b3c4d"

	t.Run("requires a token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/orders", "", gin.H{"address": "X"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates a pending order owned by the buyer", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/orders", token, gin.H{
			"items":       []gin.H{{"productId": productID, "quantity": 2}},
			"totalAmount": 40,
			"address":     "X",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "order placed successfully")

		var resp struct {
			Data struct {
				Order entity.Order `json:"order"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		o := resp.Data.Order
		assert.Equal(t, claims.UserID, o.UserID)
		assert.Equal(t, entity.StatusPending, o.Status)
		assert.Equal(t, 40.0, o.TotalAmount)
		assert.False(t, o.CreatedAt.IsZero())
		require.Len(t, o.Items, 1)
		assert.Equal(t, productID, o.Items[0].ProductID)
		assert.Equal(t, 2, o.Items[0].Quantity)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/orders", token, gin.H{
			"items": []gin.H{}, "totalAmount": 0, "address": "X",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed product reference", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/orders", token, gin.H{
			"items":       []gin.H{{"productId": "p-1", "quantity": 1}},
			"totalAmount": 10,
			"address":     "X",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid payload")
	})

	t.Run("accepts a catalog product id end to end", func(t *testing.T) {
		sellerToken := env.registerAndLogin(t, "Seller", "seller-e2e@x.com", "seller")
		w := env.do(t, http.MethodPost, "/api/products", sellerToken, gin.H{"title": "Scarf", "price": 24.5, "stock": 12})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created struct {
			Data entity.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = env.do(t, http.MethodPost, "/api/orders", token, gin.H{
			"items":       []gin.H{{"productId": created.Data.ID, "quantity": 1}},
			"totalAmount": 24.5,
			"address":     "X",
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	sellerToken := env.registerAndLogin(t, "Seller", "seller@x.com", "seller")
	buyerToken := env.registerAndLogin(t, "Buyer", "buyer@x.com", "user")
	otherToken := env.registerAndLogin(t, "Other", "other@x.com", "user")

	w := env.do(t, http.MethodPost, "/api/products", sellerToken, gin.H{"title": "Lamp", "price": 39.0, "stock": 5})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data entity.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	vanishedID := "3f0e8d4c-1111-4222-8333-444455556666"
	w = env.do(t, http.MethodPost, "/api/orders", buyerToken, gin.H{
		"items": []gin.H{
			{"productId": created.Data.ID, "quantity": 1},
			{"productId": vanishedID, "quantity": 3},
		},
		"totalAmount": 39,
		"address":     "X",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/orders", otherToken, gin.H{
		"items":       []gin.H{{"productId": created.Data.ID, "quantity": 1}},
		"totalAmount": 39,
		"address":     "Y",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("returns only own orders with expanded items", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/orders", buyerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []entity.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)

		items := resp.Data[0].Items
		require.Len(t, items, 2)
		require.NotNil(t, items[0].Product)
		assert.Equal(t, "Lamp", items[0].Product.Title)
		// The vanished reference expands to nothing instead of failing.
		assert.Nil(t, items[1].Product)
	})

	t.Run("requires a token", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
