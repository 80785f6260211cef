package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/models"
)

// HorizontalProducts returns the newest products in a category. The category
// may arrive in the body or as a query parameter; older app builds use the
// query form.
func (h *Handler) HorizontalProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Category == "" {
		req.Category = r.URL.Query().Get("category")
	}

	products, err := h.catalog.Latest(r.Context(), req.Category)
	if err != nil {
		writeError(w, err, "Error getting horizontal products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, map[string][]models.Product{"products": products})
}

func (h *Handler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.catalog.ByCategory(r.Context(), category)
	if err != nil {
		writeError(w, err, "Error getting category products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) ProductDetails(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.catalog.Details(r.Context(), productID)
	if err != nil {
		writeError(w, err, "Error getting product details")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	products, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		writeError(w, err, "Server error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, map[string][]models.Product{"products": products})
}
