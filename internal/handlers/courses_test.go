package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/example/studytracker/internal/middlewares"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/services"
)

func TestListCoursesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseLister(ctrl)

	tests := []struct {
		name          string
		authenticated bool
		mockSetup     func()
		expectedCode  int
		expectedBody  interface{}
	}{
		{
			name:          "enrolled courses only",
			authenticated: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), int64(42)).
					Return([]models.CourseDB{
						{ID: 1, Title: "Biology 101"},
						{ID: 3, Title: "World History"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &[]models.CourseDB{
				{ID: 1, Title: "Biology 101"},
				{ID: 3, Title: "World History"},
			},
		},
		{
			name:          "no enrollment",
			authenticated: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), int64(42)).
					Return([]models.CourseDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &[]models.CourseDB{},
		},
		{
			name:         "no session in context",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &CourseErrorResponse{
				Error: "Not logged in",
			},
		},
		{
			name:          "internal error",
			authenticated: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					ListCourses(gomock.Any(), int64(42)).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &CourseErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/courses", nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.WithStudentID(req.Context(), 42))
			}
			w := httptest.NewRecorder()

			handler := NewListCoursesHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &[]models.CourseDB{}
			default:
				respBody = &CourseErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestCreateCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseCreator(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: CreateCourseRequest{Title: "Biology 101"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateCourse(gomock.Any(), "Biology 101").
					Return(&models.CourseDB{ID: 1, Title: "Biology 101"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &models.CourseDB{ID: 1, Title: "Biology 101"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &CourseErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name:      "empty title",
			inputBody: CreateCourseRequest{Title: ""},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateCourse(gomock.Any(), "").
					Return(nil, services.ErrInvalidCourse)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &CourseErrorResponse{
				Error: services.ErrInvalidCourse.Error(),
			},
		},
		{
			name:      "duplicate title",
			inputBody: CreateCourseRequest{Title: "Biology 101"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateCourse(gomock.Any(), "Biology 101").
					Return(nil, services.ErrCourseTitleTaken)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: &CourseErrorResponse{
				Error: services.ErrCourseTitleTaken.Error(),
			},
		},
		{
			name:      "internal error",
			inputBody: CreateCourseRequest{Title: "Biology 101"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateCourse(gomock.Any(), "Biology 101").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &CourseErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewCreateCourseHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &models.CourseDB{}
			default:
				respBody = &CourseErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
