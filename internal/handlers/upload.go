package handlers

import (
	"net/http"
)

type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// Upload stores an image on Cloudinary and returns the URL. The app uses it
// for profile pictures before calling /register or /edit-user.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploads == nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "File upload service not available"})
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "No file provided"})
		return
	}
	defer file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "dropstore"
	}

	url, err := h.uploads.UploadFile(r.Context(), file, folder)
	if err != nil {
		writeError(w, err, "Error uploading file")
		return
	}
	writeJSON(w, http.StatusOK, UploadResponse{Message: "File uploaded successfully", URL: url})
}
