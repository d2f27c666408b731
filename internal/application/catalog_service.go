package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	repo "github.com/matrikabazaar/marketplace-api/internal/domain/repository"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 30 * time.Second
)

// CatalogService handles product creation and listing. The role gate
// for creation runs in middleware; the service fixes ownership from the
// identity it is handed.
type CatalogService struct {
	Products repo.ProductRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
}

func NewCatalogService(products repo.ProductRepository, rdb *redis.Client, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Products: products, Redis: rdb, Logger: logger}
}

type CreateProductInput struct {
	Title       string
	Price       float64
	Description string
	ImageURL    string
	Stock       int
	Category    string
}

// CreateProduct persists a product owned by the authenticated seller.
// The input carries no seller reference; ownership always comes from
// the identity.
func (s *CatalogService) CreateProduct(ctx context.Context, identity Identity, in CreateProductInput) (*entity.Product, error) {
	p := &entity.Product{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SellerID:    identity.ID,
		Stock:       in.Stock,
		Category:    in.Category,
	}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, catalogCacheKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("catalog cache invalidation failed")
		}
	}
	return p, nil
}

// ListProducts returns the full catalog in creation order, through a
// short-lived redis cache when one is configured. Cache failures fall
// back to the store.
func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if s.Redis != nil {
		var cached []entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, catalogCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	products, err := s.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, catalogCacheKey, products, catalogCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("catalog cache write failed")
		}
	}
	return products, nil
}
