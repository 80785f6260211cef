package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Auth
	r.Post("/register", h.Register)
	r.Get("/verify/{token}", h.VerifyEmail)
	r.Post("/send-otp", h.SendOTP)
	r.Post("/login", h.Login)
	r.Get("/user", h.GetUser)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/verify-reset-pass-otp", h.VerifyResetOTP)
	r.Post("/reset-password", h.ResetPassword)
	r.Post("/edit-user", h.EditUser)

	// Addresses
	r.Post("/add-address", h.AddAddress)
	r.Get("/addresses/{userId}", h.GetAddresses)
	r.Post("/delete-address", h.DeleteAddress)

	// Catalog
	r.Post("/horizontal-products", h.HorizontalProducts)
	r.Get("/category-products/{category}", h.CategoryProducts)
	r.Get("/product-details/{productId}", h.ProductDetails)
	r.Get("/search", h.SearchProducts)

	// Wishlist
	r.Post("/add-to-wishlist", h.AddToWishlist)
	r.Post("/remove-from-wishlist", h.RemoveFromWishlist)
	r.Get("/wishlist/{userId}", h.GetWishlist)
	r.Post("/check-wishlist", h.CheckWishlist)

	// Cart
	r.Post("/add-to-cart", h.AddToCart)
	r.Post("/remove-from-cart", h.RemoveFromCart)
	r.Post("/cart", h.GetCart)
	r.Post("/increase-qty", h.IncreaseQuantity)
	r.Post("/decrease-qty", h.DecreaseQuantity)
	r.Post("/check-cart", h.CheckCart)
	r.Post("/clear-cart", h.ClearCart)

	// Orders
	r.Post("/place-order", h.PlaceOrder)
	r.Post("/cancel-order", h.CancelOrder)
	r.Get("/all-orders/{userId}", h.GetOrders)

	// Uploads
	r.Post("/upload", h.Upload)
}
