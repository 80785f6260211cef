package services

import (
	"context"
	"fmt"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

// CartService owns the cart item lifecycle. Items are keyed by their own id,
// not by (user, product): adding the same product twice creates two rows, and
// the quantity endpoints address a specific item.
type CartService struct {
	items    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(items repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{items: items, products: products}
}

// Add inserts a new item with quantity 1 after checking the product exists.
// No merge with an existing item for the same product.
func (s *CartService) Add(ctx context.Context, userID, productID string) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("looking up product: %w", err)
	}
	if product == nil {
		return apperror.NotFound("Product not found")
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return fmt.Errorf("adding cart item: %w", err)
	}
	return nil
}

// Remove checks the (user, product) pair exists, then deletes by product id
// alone. With duplicate product ids across users the deleted row may belong
// to another user; kept as-is for compatibility with the stored data.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	item, err := s.items.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("looking up cart item: %w", err)
	}
	if item == nil {
		return apperror.NotFound("Product not found in cart")
	}
	if err := s.items.DeleteByProduct(ctx, productID); err != nil {
		return fmt.Errorf("removing cart item: %w", err)
	}
	return nil
}

// Items returns the user's raw cart entries. Clients resolve products
// themselves from the productId fields.
func (s *CartService) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	return items, nil
}

// IncreaseQuantity bumps the quantity of the item by one.
func (s *CartService) IncreaseQuantity(ctx context.Context, userID, itemID string) error {
	item, err := s.items.FindByUserAndID(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("looking up cart item: %w", err)
	}
	if item == nil {
		return apperror.NotFound("Product not found in cart")
	}
	if err := s.items.UpdateQuantity(ctx, item.ID, item.Quantity+1); err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}
	return nil
}

// DecreaseQuantity lowers the quantity by one. Reaching zero deletes the
// user's cart entries wholesale (the delete is keyed by user id only) and
// reports removed=true.
func (s *CartService) DecreaseQuantity(ctx context.Context, userID, itemID string) (removed bool, err error) {
	item, err := s.items.FindByUserAndID(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("looking up cart item: %w", err)
	}
	if item == nil {
		return false, apperror.NotFound("Product not found in cart")
	}

	quantity := item.Quantity - 1
	if quantity == 0 {
		if err := s.items.DeleteAllByUser(ctx, userID); err != nil {
			return false, fmt.Errorf("removing cart items: %w", err)
		}
		return true, nil
	}

	if err := s.items.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return false, fmt.Errorf("updating quantity: %w", err)
	}
	return false, nil
}

// Contains reports whether the user has the product in their cart.
func (s *CartService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	item, err := s.items.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("checking cart: %w", err)
	}
	return item != nil, nil
}

// Clear deletes every item for the user. An already-empty cart still clears
// successfully.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.items.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
