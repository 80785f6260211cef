package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/models"
)

type PlaceOrderRequest struct {
	UserID          string                `json:"userId"`
	Products        []models.OrderProduct `json:"products"`
	ShippingAddress models.Address        `json:"shippingAddress"`
	TotalPrice      float64               `json:"totalPrice"`
	PaymentMethod   string                `json:"paymentMethod"`
}

type CancelOrderRequest struct {
	OrderID string `json:"orderId"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	order := &models.Order{
		UserID:          req.UserID,
		Products:        req.Products,
		TotalPrice:      req.TotalPrice,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          "pending",
	}
	if err := h.orders.Place(r.Context(), order); err != nil {
		writeError(w, err, "Error ordering products")
		return
	}
	writeMessage(w, "Order placed successfully")
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.orders.Cancel(r.Context(), req.OrderID); err != nil {
		writeError(w, err, "Error cancelling order")
		return
	}
	writeMessage(w, "Order cancelled successfully")
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Error fetching orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
