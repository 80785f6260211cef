package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusCancelled = "cancelled"

// OrderProduct is a snapshot of a product at checkout time, not a live
// reference. Later product edits don't change past orders.
type OrderProduct struct {
	ProductID   string  `bson:"product_id" json:"productId"`
	ProductName string  `bson:"product_name" json:"productName"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user" json:"userId"`
	Products        []OrderProduct     `bson:"products" json:"products"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	ShippingAddress Address            `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	Status          string             `bson:"status" json:"status"`
	Cancelled       bool               `bson:"cancelled" json:"cancelled"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
