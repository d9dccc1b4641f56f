// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gramcare/sahayak/internal/services/user_services"
)

type AuthHandler struct {
	AuthService *user_services.AuthService
	Logger      user_services.Logger
}

func NewAuthHandler(as *user_services.AuthService, logger user_services.Logger) *AuthHandler {
	return &AuthHandler{AuthService: as, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. Accounts are optional; they let a patient
// keep one chat history across devices.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Phone, req.Password)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"userId":   user.ID,
		"username": user.Username,
	})
}

// Login checks credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
	})
}
