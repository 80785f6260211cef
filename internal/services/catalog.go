package services

import (
	"context"
	"fmt"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

const horizontalProductLimit = 10

// CatalogService serves product browsing and search.
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// Latest returns the newest products in a category for the horizontal
// carousel on the home screen.
func (s *CatalogService) Latest(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindLatestByCategory(ctx, category, horizontalProductLimit)
	if err != nil {
		return nil, fmt.Errorf("listing latest products: %w", err)
	}
	return products, nil
}

// ByCategory returns every product in a category.
func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing category products: %w", err)
	}
	return products, nil
}

// Details returns a single product.
func (s *CatalogService) Details(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("looking up product: %w", err)
	}
	if product == nil {
		return nil, apperror.NotFound("Product not found")
	}
	return product, nil
}

// Search matches products by name, brand or category, case-insensitively.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return nil, apperror.Validation("Query parameter is required")
	}
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return products, nil
}
