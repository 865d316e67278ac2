package handlers

import (
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

func TestCheckSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSessionChecker(ctrl)

	tests := []struct {
		name         string
		cookie       *http.Cookie
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "active session",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "tok-1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CheckSession(gomock.Any(), "tok-1").
					Return(&models.Student{ID: 1, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.Student{ID: 1, Username: "alice"},
		},
		{
			name:         "no cookie",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &CheckSessionErrorResponse{
				Error: "Not logged in",
			},
		},
		{
			name:   "stale token",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "stale"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CheckSession(gomock.Any(), "stale").
					Return(nil, services.ErrNoSession)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &CheckSessionErrorResponse{
				Error: "Not logged in",
			},
		},
		{
			name:   "internal error",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "tok-1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					CheckSession(gomock.Any(), "tok-1").
					Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &CheckSessionErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/check_session", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			handler := NewCheckSessionHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &models.Student{}
			default:
				respBody = &CheckSessionErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
