package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/models"
)

type WishlistItemRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.wishlist.Add(r.Context(), req.UserID, req.ProductID); err != nil {
		writeError(w, err, "Error adding product to wishlist")
		return
	}
	writeMessage(w, "Product added to wishlist")
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.wishlist.Remove(r.Context(), req.UserID, req.ProductID); err != nil {
		writeError(w, err, "Error removing product from wishlist")
		return
	}
	writeMessage(w, "Product removed from wishlist")
}

// GetWishlist returns resolved products, not the raw wishlist entries.
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	products, err := h.wishlist.Products(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Error fetching wishlist")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	inWishlist, err := h.wishlist.Contains(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		writeError(w, err, "Error checking wishlist")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"inWishlist": inWishlist})
}
