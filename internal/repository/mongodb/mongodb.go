// Package mongodb implements the repository interfaces on top of the
// mongo-driver collections.
package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles the per-collection repositories built from one database
// handle, so main wires storage in a single call.
type Repositories struct {
	Users    *UserRepo
	Products *ProductRepo
	Cart     *CartRepo
	Wishlist *WishlistRepo
	Orders   *OrderRepo
}

func New(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:    NewUserRepo(db),
		Products: NewProductRepo(db),
		Cart:     NewCartRepo(db),
		Wishlist: NewWishlistRepo(db),
		Orders:   NewOrderRepo(db),
	}
}
