package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/example/studytracker/internal/logger"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// SessionResolver resolves an opaque session token to a student id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int64, bool, error)
}

type studentIDKey struct{}

// AuthMiddleware resolves the session cookie once per request and stores
// the student id in the request context. Requests without an active
// session are answered with 401.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := TokenFromRequest(r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			studentID, active, err := resolver.Resolve(ctx, token)
			if err != nil {
				logger.Log.Errorw("failed to resolve session", "err", err)
				writeUnauthorized(w)
				return
			}
			if !active {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStudentID(ctx, studentID)))
		})
	}
}

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	if c.Value == "" {
		return "", http.ErrNoCookie
	}
	return c.Value, nil
}

// WithStudentID stores the authenticated student id in the context.
func WithStudentID(ctx context.Context, studentID int64) context.Context {
	return context.WithValue(ctx, studentIDKey{}, studentID)
}

// StudentIDFromContext returns the student id stored by AuthMiddleware.
func StudentIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(studentIDKey{}).(int64)
	return id, ok
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not logged in"})
}
