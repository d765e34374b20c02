package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/milan/taxi-booking-website/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// Auth reads the session cookie, validates the token against the session
// store (including its expiry), and injects the owning user ID into the
// request context. Requests without a valid session get 401.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			userID, err := authService.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, service.ErrNotAuthenticated) {
					log.Printf("ERROR [middleware.Auth] session lookup failed: %v", err)
				}
				writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
