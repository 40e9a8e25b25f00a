package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"renthub-backend/internal/auth"
	"renthub-backend/internal/domain"
)

func TestMiddleware_Authenticate(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("MissingTokenRejected", func(t *testing.T) {
		mw := NewMiddleware(new(MockAuthProvider), new(MockUserRepo))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidTokenRejected", func(t *testing.T) {
		provider := new(MockAuthProvider)
		provider.On("Verify", mock.Anything, "bad").Return(nil, auth.ErrInvalidToken)
		mw := NewMiddleware(provider, new(MockUserRepo))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenLoadsUser", func(t *testing.T) {
		provider := new(MockAuthProvider)
		provider.On("Verify", mock.Anything, "good").Return(&auth.Identity{UID: "u1"}, nil)
		users := new(MockUserRepo)
		users.On("GetByID", mock.Anything, "u1").Return(&domain.User{UserID: "u1"}, nil)
		mw := NewMiddleware(provider, users)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		mw.Authenticate(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		mw := NewMiddleware(new(MockAuthProvider), new(MockUserRepo))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", nil)
		req = req.WithContext(withUser(req.Context(), &domain.User{UserID: "u1"}))
		rec := httptest.NewRecorder()
		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("AdminPassesThrough", func(t *testing.T) {
		mw := NewMiddleware(new(MockAuthProvider), new(MockUserRepo))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", nil)
		req = req.WithContext(withUser(req.Context(), &domain.User{UserID: "a1", IsAdmin: true}))
		rec := httptest.NewRecorder()
		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, nextCalled)
	})
}
