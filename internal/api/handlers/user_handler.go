package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avasse/roomly-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles signup and login.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new account registration. The response carries the bearer
// token the client will present on every authenticated request.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Signup(payload.Email, payload.Password, payload.Username, payload.Name, payload.Description, payload.Phone)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Signup rejected")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles authentication. A successful login returns the same token
// that was issued at signup.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
