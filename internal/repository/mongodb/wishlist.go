package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

type WishlistRepo struct {
	col *mongo.Collection
}

func NewWishlistRepo(db *mongo.Database) *WishlistRepo {
	return &WishlistRepo{col: db.Collection("wishlists")}
}

func (r *WishlistRepo) Insert(ctx context.Context, item *models.WishlistItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *WishlistRepo) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepo) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.WishlistItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByProduct deletes a single item by product id only, owner not part of
// the filter.
func (r *WishlistRepo) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"product_id": productID})
	return err
}
