package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/middlewares"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/services"
)

// ExamLister defines the interface for listing a student's exams in a course.
type ExamLister interface {
	ListExams(ctx context.Context, studentID, courseID int64) ([]models.ExamDB, error)
}

// ExamCreator defines the interface for recording exams.
type ExamCreator interface {
	CreateExam(ctx context.Context, studentID, courseID int64, score int, date time.Time, fileURL *string) (*models.ExamDB, error)
}

// examDateLayout is the wire format for exam dates.
const examDateLayout = "2006-01-02"

// ListExamsResponse wraps the exam list
// swagger:model ListExamsResponse
type ListExamsResponse struct {
	Exams []models.ExamDB `json:"exams"`
}

// CreateExamRequest represents the JSON body for recording an exam
// swagger:model CreateExamRequest
type CreateExamRequest struct {
	// Exam score
	// required: true
	// example: 87
	Score int `json:"score"`

	// Date the exam was taken, YYYY-MM-DD
	// required: true
	// example: 2025-05-12
	Date string `json:"date"`

	// Optional link to the graded paper
	// example: https://files.example.com/exams/42.pdf
	FileURL *string `json:"file_url"`
}

// ExamErrorResponse represents an error response for exam endpoints
// swagger:model ExamErrorResponse
type ExamErrorResponse struct {
	// Error message
	// example: course does not exist
	Error string `json:"error"`
}

// NewListExamsHandler returns an HTTP handler listing the caller's exams in a course.
// @Summary List own exams in a course
// @Tags exams
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} handlers.ListExamsResponse "Exams of the caller in the course"
// @Failure 401 {object} handlers.ExamErrorResponse "No active session"
// @Failure 404 {object} handlers.ExamErrorResponse "Course does not exist"
// @Router /courses/{id}/exams [get]
func NewListExamsHandler(svc ExamLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middlewares.StudentIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		courseID, err := courseIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "course does not exist",
			})
			return
		}

		exams, err := svc.ListExams(r.Context(), studentID, courseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExamErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExamErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListExamsResponse{Exams: exams})
	}
}

// NewCreateExamHandler returns an HTTP handler recording an exam for the caller.
// @Summary Record an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param createExamRequest body handlers.CreateExamRequest true "Exam"
// @Success 201 {object} models.ExamDB "Recorded exam"
// @Failure 400 {object} handlers.ExamErrorResponse "Malformed body or date"
// @Failure 401 {object} handlers.ExamErrorResponse "No active session"
// @Failure 404 {object} handlers.ExamErrorResponse "Course does not exist"
// @Router /courses/{id}/exams [post]
func NewCreateExamHandler(svc ExamCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middlewares.StudentIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		courseID, err := courseIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "course does not exist",
			})
			return
		}

		var req CreateExamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		date, err := time.Parse(examDateLayout, req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExamErrorResponse{
				Error: "date must be formatted as YYYY-MM-DD",
			})
			return
		}

		exam, err := svc.CreateExam(r.Context(), studentID, courseID, req.Score, date, req.FileURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExamErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExamErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(exam)
	}
}
