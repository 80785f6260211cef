package services

import (
	"context"
	"fmt"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

// OrderService owns checkout and cancellation. Orders embed product and
// address snapshots; nothing is re-read from the catalog at cancel time.
type OrderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// Place stores a new order for an existing user.
func (s *OrderService) Place(ctx context.Context, order *models.Order) error {
	user, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return fmt.Errorf("placing order: %w", err)
	}
	return nil
}

// Cancel flips the cancelled flag. The already-cancelled guard reads the
// status field while cancellation writes the flag, so the guard only fires
// for orders whose status was set to cancelled out of band.
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("looking up order: %w", err)
	}
	if order == nil {
		return apperror.NotFound("Order not found")
	}
	if order.Status == models.OrderStatusCancelled {
		return apperror.Conflict("Order already cancelled")
	}

	if err := s.orders.MarkCancelled(ctx, order.ID); err != nil {
		return fmt.Errorf("cancelling order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}
