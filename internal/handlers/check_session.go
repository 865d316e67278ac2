package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/middlewares"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/services"
)

// SessionChecker defines the interface that the session check service must implement.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (*models.Student, error)
}

// CheckSessionErrorResponse represents an error response for the session check
// swagger:model CheckSessionErrorResponse
type CheckSessionErrorResponse struct {
	// Error message
	// example: Not logged in
	Error string `json:"error"`
}

// NewCheckSessionHandler returns an HTTP handler that reports who is logged in.
// @Summary Check session
// @Description Returns the identity bound to the session cookie, when the session is active and the account still exists.
// @Tags auth
// @Produce json
// @Success 200 {object} models.Student "Public identity"
// @Failure 401 {object} handlers.CheckSessionErrorResponse "No active session"
// @Router /check_session [get]
func NewCheckSessionHandler(svc SessionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := middlewares.TokenFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CheckSessionErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		student, err := svc.CheckSession(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoSession):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(CheckSessionErrorResponse{
					Error: "Not logged in",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CheckSessionErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(student)
	}
}
