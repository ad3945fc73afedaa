package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blood-bank-backend/config"
	"blood-bank-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	middleware := NewAuthMiddleware(newTestJWTService())
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	middleware := NewAuthMiddleware(newTestJWTService())
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
		request.Header.Set("Authorization", header)
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	middleware := NewAuthMiddleware(newTestJWTService())
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	request.Header.Set("Authorization", "Bearer not-a-valid-token")
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	token, err := expired.GenerateToken(uuid.New(), "user@college.edu", "user")
	require.NoError(t, err)

	middleware := NewAuthMiddleware(newTestJWTService())
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAuthenticatePopulatesContext(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID, "admin@college.edu", "admin")
	require.NoError(t, err)

	middleware := NewAuthMiddleware(jwtService)
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		email, ok := GetUserEmailFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin@college.edu", email)

		role, ok := GetUserRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", role)

		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	middleware := NewAuthMiddleware(jwtService)

	protected := middleware.Authenticate(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	adminToken, err := jwtService.GenerateToken(uuid.New(), "admin@college.edu", "admin")
	require.NoError(t, err)
	userToken, err := jwtService.GenerateToken(uuid.New(), "user@college.edu", "user")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	request.Header.Set("Authorization", "Bearer "+adminToken)
	protected.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	request.Header.Set("Authorization", "Bearer "+userToken)
	protected.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
