// Package repository defines the persistence interfaces consumed by the
// service layer. The MongoDB implementations live in repository/mongodb;
// tests substitute in-memory fakes.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dropstore/dropstore-backend/internal/models"
)

// Find methods return (nil, nil) when no document matches, mirroring a
// findOne miss; callers translate that into their own not-found error.

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	// Replace overwrites the whole document, so fields cleared on the model
	// (tokens) disappear from storage.
	Replace(ctx context.Context, user *models.User) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindLatestByCategory(ctx context.Context, category string, limit int64) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type CartRepository interface {
	Insert(ctx context.Context, item *models.CartItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	FindByUserAndID(ctx context.Context, userID, itemID string) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error
	// DeleteByProduct removes a single item matched by product id alone,
	// regardless of owner.
	DeleteByProduct(ctx context.Context, productID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

type WishlistRepository interface {
	Insert(ctx context.Context, item *models.WishlistItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.WishlistItem, error)
	ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error)
	// DeleteByProduct removes a single item matched by product id alone.
	DeleteByProduct(ctx context.Context, productID string) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	// MarkCancelled sets the cancelled flag; the status field is left as-is.
	MarkCancelled(ctx context.Context, id primitive.ObjectID) error
}
