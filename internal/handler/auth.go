// Package handler contains the HTTP layer: request parsing, validation, and
// response shaping. Business rules live in the service layer.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/hireorbit/backend/internal/auth"
	"github.com/hireorbit/backend/internal/service"
)

// AuthHandler serves registration, login, and the current-account endpoint.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   authService,
		logger: logger,
	}
}

// tokenResponse is the POST /login success payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HandleRoot responds to GET / with a liveness message.
func (h *AuthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "HireOrbit API is running"})
}

// HandleRegister creates a new account.
//
// HTTP: POST /register {username, email, password}
//
// Responds 200 with the account's public fields (the digest never leaves the
// server — model.User excludes it from JSON). A duplicate email is a 400
// "Email already registered"; this is intentionally more specific than the
// login error, trading an enumeration side channel for a usable signup form.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("registration failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleLogin verifies credentials and returns a bearer token.
//
// HTTP: POST /login {email, password}
//
// Responds 200 {"access_token": ..., "token_type": "bearer"} or 400
// "Invalid credentials" — the same error whether the email is unknown or the
// password is wrong.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe returns the authenticated account's public fields.
//
// HTTP: GET /me
// Auth: required — RequireAuth has already resolved the account.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}
