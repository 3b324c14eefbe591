package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
)

// Tokener defines the minimal token operations needed by the middlewares
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// userIDKey is an unexported type for the requester id context key
type userIDKey struct{}

// SetUserIDToContext stores the requester id in the context
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the requester id from the context.
// Returns nil if the request carried no verified identity.
func GetUserIDFromContext(ctx context.Context) *int64 {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return nil
	}
	return &userID
}

// AuthMiddleware returns a middleware that requires a valid bearer token.
// Requests without a verifiable identity are rejected with 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

// IdentityMiddleware returns a middleware that extracts the requester identity
// on a best-effort basis. A missing, invalid or expired token leaves the
// request anonymous instead of rejecting it, so reads still succeed.
func IdentityMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("ignoring invalid token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}
