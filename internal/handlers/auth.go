package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/services"
)

// Authenticator defines the interface that the auth service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// AuthRequest represents the JSON body for authentication
// swagger:model AuthRequest
type AuthRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful authentication response
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// AuthErrorResponse represents an error response for authentication
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewAuthHandler returns an HTTP handler for authentication.
// An unseen username is registered on its first successful authentication.
// @Summary Authenticate a user
// @Description Verifies credentials and returns a JWT bearer token. Unseen usernames are auto-registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param authRequest body handlers.AuthRequest true "Credentials"
// @Success 200 {object} handlers.AuthResponse "JWT token returned"
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AuthErrorResponse "Invalid username or password"
// @Router /auth [post]
func NewAuthHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AuthErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Error: "Invalid username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: token,
		})
	}
}
