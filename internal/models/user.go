package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a shipping address embedded in the user document.
type Address struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Street     string             `bson:"street" json:"street"`
	Landmark   string             `bson:"landmark" json:"landmark"`
	HouseNo    string             `bson:"house_no,omitempty" json:"houseNo,omitempty"`
	PostalCode string             `bson:"postal_code" json:"postalCode"`
	MobileNo   string             `bson:"mobile_no" json:"mobileNo"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Password   string `bson:"password" json:"-"` // Don't return password in JSON
	ProfilePic string `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`

	// Verification state. Token fields are one-time codes; clearing them
	// relies on omitempty so a replace drops the field from the document.
	Verified          bool   `bson:"verified" json:"verified"`
	VerificationToken string `bson:"verification_token,omitempty" json:"-"`
	ResetToken        string `bson:"reset_token,omitempty" json:"-"`

	Addresses []Address `bson:"addresses,omitempty" json:"addresses,omitempty"`
}
