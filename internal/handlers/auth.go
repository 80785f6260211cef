package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
)

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProfilePic string `json:"profilePic,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

type EditUserRequest struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
}

// Register creates an unverified account and kicks off the verification mail.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.Register(r.Context(), req.Name, req.Email, req.Password, req.ProfilePic); err != nil {
		writeError(w, err, "Registration Failed.")
		return
	}
	writeMessage(w, "Registration successful!")
}

// VerifyEmail consumes the verification token from the path.
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if err := h.identity.Verify(r.Context(), token); err != nil {
		writeError(w, err, "Error verifying email.")
		return
	}
	writeMessage(w, "OTP Verified")
}

// SendOTP regenerates and resends the verification code.
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.ResendOTP(r.Context(), req.Email); err != nil {
		writeError(w, err, "Error sending OTP")
		return
	}
	writeMessage(w, "OTP sent successfully!")
}

// Login returns a session token on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	token, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, "Error logging in")
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Message: "Login successful", Token: token})
}

// GetUser resolves the Bearer token to the current user.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, apperror.Unauthorized("Invalid token"), "Error getting user details")
		return
	}

	user, err := h.identity.UserByToken(r.Context(), token)
	if err != nil {
		writeError(w, err, "Error getting user details")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.User{"user": user})
}

// ForgotPassword mails a reset code. Mail delivery is awaited here, so an
// SMTP failure fails the request.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, err, "Error sending forgot password email")
		return
	}
	writeMessage(w, "Forgot password email sent successfully")
}

// VerifyResetOTP checks a reset code without consuming it.
func (h *Handler) VerifyResetOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OTP string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.VerifyResetOTP(r.Context(), req.OTP); err != nil {
		writeError(w, err, "Error verifying OTP")
		return
	}
	writeMessage(w, "OTP verified successfully")
}

// ResetPassword overwrites the password, responds, then sends the
// confirmation mail. The mail runs after the response is on the wire and can
// only be logged.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.ResetPassword(r.Context(), req.Email, req.OTP, req.Password); err != nil {
		writeError(w, err, "Error resetting password")
		return
	}
	writeMessage(w, "Password reset successfully")

	h.identity.NotifyPasswordChanged(req.Email)
}

// EditUser updates name and profile picture.
func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	var req EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
		return
	}

	if err := h.identity.EditUser(r.Context(), req.UserID, req.Name, req.ProfilePic); err != nil {
		writeError(w, err, "Error editing user details")
		return
	}
	writeMessage(w, "User details updated successfully")
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
