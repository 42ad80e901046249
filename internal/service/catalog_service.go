package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"bazaar/internal/cache"
	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
	"bazaar/internal/repository"
)

const (
	catalogCachePrefix = "catalog:"
	catalogCacheTTL    = 5 * time.Minute
)

// CatalogService exposes the approved product catalog.
type CatalogService interface {
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Remove(ctx context.Context, id uint) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	blobs       BlobStore
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, blobs BlobStore, cache *cache.Client) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		blobs:       blobs,
		cache:       cache,
	}
}

// ListByCategory returns the approved products in a category, cache-aside.
func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	key := catalogCachePrefix + "category:" + category
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, key, payload, catalogCacheTTL)
	}
	return products, nil
}

// ListAll returns the whole catalog, cache-aside.
func (s *catalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	key := catalogCachePrefix + "all"
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, key, payload, catalogCacheTTL)
	}
	return products, nil
}

// Remove deletes a catalog product and its image blob.
func (s *catalogService) Remove(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if product.ProductImage != "" {
		if err := s.blobs.Remove(product.ProductImage); err != nil {
			log.Printf("remove product: blob %s not removed: %v", product.ProductImage, err)
		}
	}

	_ = s.cache.DeletePrefix(ctx, catalogCachePrefix)
	return nil
}
