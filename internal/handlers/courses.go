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

// CourseLister defines the interface for listing a student's courses.
type CourseLister interface {
	ListCourses(ctx context.Context, studentID int64) ([]models.CourseDB, error)
}

// CourseCreator defines the interface for creating courses.
type CourseCreator interface {
	CreateCourse(ctx context.Context, title string) (*models.CourseDB, error)
}

// CreateCourseRequest represents the JSON body for course creation
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	// Course title, unique
	// required: true
	// example: Biology 101
	Title string `json:"title"`
}

// CourseErrorResponse represents an error response for course endpoints
// swagger:model CourseErrorResponse
type CourseErrorResponse struct {
	// Error message
	// example: course title already exists
	Error string `json:"error"`
}

// NewListCoursesHandler returns an HTTP handler listing the caller's courses.
// Enrollment is derived from the caller's exams and flashcards, so the
// response never includes courses the caller has no records in.
// @Summary List enrolled courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseDB "Courses the caller is enrolled in"
// @Failure 401 {object} handlers.CourseErrorResponse "No active session"
// @Router /courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middlewares.StudentIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Error: "Not logged in",
			})
			return
		}

		courses, err := svc.ListCourses(r.Context(), studentID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(courses)
	}
}

// NewCreateCourseHandler returns an HTTP handler for course creation.
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param createCourseRequest body handlers.CreateCourseRequest true "Course creation request"
// @Success 201 {object} models.CourseDB "Created course"
// @Failure 400 {object} handlers.CourseErrorResponse "Malformed body or empty title"
// @Failure 422 {object} handlers.CourseErrorResponse "Duplicate title"
// @Router /courses [post]
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCourseRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CourseErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		course, err := svc.CreateCourse(r.Context(), req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCourse):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CourseErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrCourseTitleTaken):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(CourseErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CourseErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(course)
	}
}
