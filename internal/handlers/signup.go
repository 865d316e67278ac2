package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/passwords"
	"github.com/example/studytracker/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, password, passwordConfirmation string) (*models.Student, string, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username, 3-15 characters
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Password confirmation, must equal password
	// required: true
	// example: secret123
	PasswordConfirmation string `json:"password_confirmation"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// example: username already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up a new student
// @Description Creates an account, hashes the password and opens a session. The session token is set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} models.Student "Public identity of the new account"
// @Failure 400 {object} handlers.SignupErrorResponse "Malformed body or confirmation mismatch"
// @Failure 422 {object} handlers.SignupErrorResponse "Username length or uniqueness violation"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		student, token, err := svc.Signup(r.Context(), req.Username, req.Password, req.PasswordConfirmation)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrInvalidUsername),
				errors.Is(err, services.ErrUsernameTaken),
				errors.Is(err, passwords.ErrEmptyPassword):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		setSessionCookie(w, token)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(student)
	}
}
