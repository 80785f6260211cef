package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem associates a user with a product. The pair is deliberately not
// unique: adding the same product twice creates two items. Quantity is never
// persisted at zero; decrementing to zero deletes instead.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	ProductID string             `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
