package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubResolver resolves tokens from a fixed map.
type stubResolver struct {
	sessions map[string]int64
	err      error
}

func (s *stubResolver) Resolve(_ context.Context, token string) (int64, bool, error) {
	if s.err != nil {
		return 0, false, s.err
	}
	id, ok := s.sessions[token]
	return id, ok, nil
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		cookie        *http.Cookie
		resolver      *stubResolver
		expectedCode  int
		wantStudentID int64
	}{
		{
			name:          "active session",
			cookie:        &http.Cookie{Name: SessionCookieName, Value: "tok-1"},
			resolver:      &stubResolver{sessions: map[string]int64{"tok-1": 42}},
			expectedCode:  http.StatusOK,
			wantStudentID: 42,
		},
		{
			name:         "no cookie",
			resolver:     &stubResolver{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "empty cookie value",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: ""},
			resolver:     &stubResolver{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "stale token",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: "stale"},
			resolver:     &stubResolver{sessions: map[string]int64{"tok-1": 42}},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "resolver error",
			cookie:       &http.Cookie{Name: SessionCookieName, Value: "tok-1"},
			resolver:     &stubResolver{err: errors.New("redis down")},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				id, ok := StudentIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, tt.wantStudentID, id)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.resolver)(next)

			req := httptest.NewRequest(http.MethodGet, "/courses", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusUnauthorized {
				assert.False(t, nextCalled)

				var body map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "Not logged in", body["error"])
			} else {
				assert.True(t, nextCalled)
			}
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-1"})

		token, err := TokenFromRequest(req)
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", token)
	})

	t.Run("absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := TokenFromRequest(req)
		assert.ErrorIs(t, err, http.ErrNoCookie)
	})
}

func TestStudentIDFromContext_Empty(t *testing.T) {
	_, ok := StudentIDFromContext(context.Background())
	assert.False(t, ok)
}
