package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/middlewares"
	"github.com/example/studytracker/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// example: Not logged in
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that destroys the session.
// @Summary Log out
// @Description Destroys the session bound to the session cookie and expires the cookie.
// @Tags auth
// @Produce json
// @Success 204 "Session destroyed"
// @Failure 401 {object} handlers.LogoutErrorResponse "No active session"
// @Router /logout [delete]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := middlewares.TokenFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			switch {
			case errors.Is(err, services.ErrNoSession):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Not logged in",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		clearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}
