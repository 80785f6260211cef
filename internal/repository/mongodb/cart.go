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

var _ repository.CartRepository = (*CartRepo)(nil)

type CartRepo struct {
	col *mongo.Collection
}

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{col: db.Collection("carts")}
}

func (r *CartRepo) Insert(ctx context.Context, item *models.CartItem) error {
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

func (r *CartRepo) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "product_id": productID})
}

func (r *CartRepo) FindByUserAndID(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"user_id": userID, "_id": oid})
}

func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"quantity": quantity}})
	return err
}

// DeleteByProduct deletes a single item by product id only. The filter does
// not include the owner, so with duplicate product ids across users the
// deleted item may belong to someone else.
func (r *CartRepo) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"product_id": productID})
	return err
}

func (r *CartRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func (r *CartRepo) findOne(ctx context.Context, filter bson.M) (*models.CartItem, error) {
	var item models.CartItem
	err := r.col.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
