package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	ProductID string             `bson:"product_id" json:"productId"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
