package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dropstore/dropstore-backend/internal/apperror"
)

// MessageResponse is the {message} body used by most endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// writeError converts a service error to the wire. Business errors (missing
// field, no match, duplicate, bad credentials, unverified account) all come
// back as 400 with their message; anything else is logged and turned into a
// generic 500. The API predates RESTful status conventions and clients key
// off the message text, so the 400 mapping stays.
func writeError(w http.ResponseWriter, err error, fallback string) {
	if apperror.IsBusiness(err) {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}
	log.Printf("%s: %v", fallback, err)
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: fallback})
}
