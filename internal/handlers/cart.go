package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dropstore/dropstore-backend/internal/models"
)

// CartItemRequest addresses either a (user, product) pair or, for the
// quantity endpoints, a (user, cart item id) pair. The mobile client sends
// the item's own id in the productId field there.
type CartItemRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.cart.Add(r.Context(), req.UserID, req.ProductID); err != nil {
		writeError(w, err, "Error adding product to cart")
		return
	}
	writeMessage(w, "Product added to cart")
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.cart.Remove(r.Context(), req.UserID, req.ProductID); err != nil {
		writeError(w, err, "Error removing product from cart")
		return
	}
	writeMessage(w, "Product removed from cart")
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	items, err := h.cart.Items(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err, "Error fetching cart")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.cart.IncreaseQuantity(r.Context(), req.UserID, req.ProductID); err != nil {
		writeError(w, err, "Error increasing quantity")
		return
	}
	writeMessage(w, "Quantity increased successfully")
}

func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	removed, err := h.cart.DecreaseQuantity(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		writeError(w, err, "Error decreasing quantity")
		return
	}
	if removed {
		writeMessage(w, "Product removed from cart")
		return
	}
	writeMessage(w, "Quantity decreased successfully")
}

func (h *Handler) CheckCart(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	inCart, err := h.cart.Contains(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		writeError(w, err, "Error checking cart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"inCart": inCart})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.cart.Clear(r.Context(), req.UserID); err != nil {
		writeError(w, err, "Error clearing cart")
		return
	}
	writeMessage(w, "Cart cleared successfully")
}
