package services

import (
	"context"
	"fmt"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

// WishlistService mirrors the cart's add/remove/check shape, but its listing
// returns resolved products instead of raw entries.
type WishlistService struct {
	items    repository.WishlistRepository
	products repository.ProductRepository
}

func NewWishlistService(items repository.WishlistRepository, products repository.ProductRepository) *WishlistService {
	return &WishlistService{items: items, products: products}
}

// Add inserts a wishlist entry after checking the product exists. No dedupe
// for repeated adds of the same pair.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("looking up product: %w", err)
	}
	if product == nil {
		return apperror.NotFound("Product not found")
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.items.Insert(ctx, item); err != nil {
		return fmt.Errorf("adding wishlist item: %w", err)
	}
	return nil
}

// Remove checks the (user, product) pair exists, then deletes by product id
// alone, same scope gap as the cart removal.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	item, err := s.items.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("looking up wishlist item: %w", err)
	}
	if item == nil {
		return apperror.NotFound("Product not found in wishlist")
	}
	if err := s.items.DeleteByProduct(ctx, productID); err != nil {
		return fmt.Errorf("removing wishlist item: %w", err)
	}
	return nil
}

// Products resolves the user's wishlist entries to product documents, newest
// first. Entries whose product has since been deleted are skipped.
func (s *WishlistService) Products(ctx context.Context, userID string) ([]models.Product, error) {
	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing wishlist: %w", err)
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolving wishlist product: %w", err)
		}
		if product != nil {
			products = append(products, *product)
		}
	}
	return products, nil
}

// Contains reports whether the user has the product wishlisted.
func (s *WishlistService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	item, err := s.items.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("checking wishlist: %w", err)
	}
	return item != nil, nil
}
