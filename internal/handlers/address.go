package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/models"
)

type AddAddressRequest struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	Landmark   string `json:"landmark"`
	HouseNo    string `json:"houseNo"`
	PostalCode string `json:"postalCode"`
	MobileNo   string `json:"mobileNo"`
}

type DeleteAddressRequest struct {
	UserID    string `json:"userId"`
	AddressID string `json:"addressId"`
}

func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req AddAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	addr := models.Address{
		Name:       req.Name,
		Street:     req.Street,
		Landmark:   req.Landmark,
		HouseNo:    req.HouseNo,
		PostalCode: req.PostalCode,
		MobileNo:   req.MobileNo,
	}
	if err := h.identity.AddAddress(r.Context(), req.UserID, addr); err != nil {
		writeError(w, err, "Error adding address")
		return
	}
	writeMessage(w, "Address added successfully")
}

func (h *Handler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	addresses, err := h.identity.Addresses(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Error getting addresses")
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	var req DeleteAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.DeleteAddress(r.Context(), req.UserID, req.AddressID); err != nil {
		writeError(w, err, "Error deleting address")
		return
	}
	writeMessage(w, "Address deleted successfully")
}
