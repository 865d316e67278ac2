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

// FlashcardLister defines the interface for listing a student's flashcards in a course.
type FlashcardLister interface {
	ListFlashcards(ctx context.Context, studentID, courseID int64) ([]models.FlashcardDB, error)
}

// FlashcardCreator defines the interface for creating flashcards.
type FlashcardCreator interface {
	CreateFlashcard(ctx context.Context, studentID, courseID int64, front, back string) (*models.FlashcardDB, error)
}

// CreateFlashcardRequest represents the JSON body for flashcard creation
// swagger:model CreateFlashcardRequest
type CreateFlashcardRequest struct {
	// Question side
	// required: true
	// example: What is the powerhouse of the cell?
	Front string `json:"front"`

	// Answer side
	// required: true
	// example: The mitochondria
	Back string `json:"back"`
}

// FlashcardErrorResponse represents an error response for flashcard endpoints
// swagger:model FlashcardErrorResponse
type FlashcardErrorResponse struct {
	// Error message
	// example: course does not exist
	Error string `json:"error"`
}

// NewListFlashcardsHandler returns an HTTP handler listing the caller's flashcards in a course.
// @Summary List own flashcards in a course
// @Tags flashcards
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {array} models.FlashcardDB "Flashcards of the caller in the course"
// @Failure 401 {object} handlers.FlashcardErrorResponse "No active session"
// @Failure 404 {object} handlers.FlashcardErrorResponse "Course does not exist"
// @Router /courses/{id}/flashcards [get]
func NewListFlashcardsHandler(svc FlashcardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middlewares.StudentIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FlashcardErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		courseID, err := courseIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FlashcardErrorResponse{
				Error: "course does not exist",
			})
			return
		}

		flashcards, err := svc.ListFlashcards(r.Context(), studentID, courseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FlashcardErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FlashcardErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(flashcards)
	}
}

// NewCreateFlashcardHandler returns an HTTP handler creating a flashcard for the caller.
// @Summary Create a flashcard
// @Tags flashcards
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param createFlashcardRequest body handlers.CreateFlashcardRequest true "Flashcard"
// @Success 201 {object} models.FlashcardDB "Created flashcard"
// @Failure 400 {object} handlers.FlashcardErrorResponse "Malformed body or empty side"
// @Failure 401 {object} handlers.FlashcardErrorResponse "No active session"
// @Failure 404 {object} handlers.FlashcardErrorResponse "Course does not exist"
// @Router /courses/{id}/flashcards [post]
func NewCreateFlashcardHandler(svc FlashcardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middlewares.StudentIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FlashcardErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		courseID, err := courseIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FlashcardErrorResponse{
				Error: "course does not exist",
			})
			return
		}

		var req CreateFlashcardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FlashcardErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		card, err := svc.CreateFlashcard(r.Context(), studentID, courseID, req.Front, req.Back)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidFlashcard):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FlashcardErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FlashcardErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FlashcardErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(card)
	}
}
