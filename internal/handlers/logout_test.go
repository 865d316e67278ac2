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
	"github.com/example/studytracker/internal/services"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)

	tests := []struct {
		name         string
		cookie       *http.Cookie
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "success",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "tok-1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Logout(gomock.Any(), "tok-1").
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "no cookie",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "empty cookie value",
			cookie:       &http.Cookie{Name: middlewares.SessionCookieName, Value: ""},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "session already gone",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "stale"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Logout(gomock.Any(), "stale").
					Return(services.ErrNoSession)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "internal error",
			cookie: &http.Cookie{Name: middlewares.SessionCookieName, Value: "tok-1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Logout(gomock.Any(), "tok-1").
					Return(errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			handler := NewLogoutHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusNoContent {
				cookie := sessionCookie(w.Result().Cookies())
				if assert.NotNil(t, cookie) {
					assert.Empty(t, cookie.Value)
					assert.Negative(t, cookie.MaxAge)
				}
			} else {
				var respBody LogoutErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
				assert.NotEmpty(t, respBody.Error)
			}
		})
	}
}
