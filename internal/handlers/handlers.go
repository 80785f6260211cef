// Package handlers contains the thin HTTP layer: decode JSON, call a
// service, encode the result. All business rules live in internal/services.
package handlers

import (
	"github.com/dropstore/dropstore-backend/internal/services"
)

type Handler struct {
	identity *services.IdentityService
	cart     *services.CartService
	catalog  *services.CatalogService
	wishlist *services.WishlistService
	orders   *services.OrderService
	uploads  *services.CloudinaryService // nil when Cloudinary is not configured
}

func New(
	identity *services.IdentityService,
	cart *services.CartService,
	catalog *services.CatalogService,
	wishlist *services.WishlistService,
	orders *services.OrderService,
	uploads *services.CloudinaryService,
) *Handler {
	return &Handler{
		identity: identity,
		cart:     cart,
		catalog:  catalog,
		wishlist: wishlist,
		orders:   orders,
		uploads:  uploads,
	}
}
