package middleware

import (
	"context"
	"net/http"

	"github.com/bloomafter40/platform/internal/entity"
)

// SessionCookieName is the login cookie set by the auth handler.
const SessionCookieName = "bloom_session"

type contextKey string

const userIDKey contextKey = "user_id"

// RequireSession resolves the session cookie against the session store and
// injects the user id into the request context. Missing, unknown or expired
// sessions get a 401 with the generic message the frontend expects.
func RequireSession(sessions entity.SessionRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			session, err := sessions.FindByToken(r.Context(), cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if session.Expired() {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, session.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID returns a context carrying the authenticated user id, the same
// way RequireSession does.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id placed by RequireSession, or ""
// on an unauthenticated request.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
