package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, role string, duration time.Duration, key []byte, method jwt.SigningMethod) string {
	t.Helper()

	claims := &middleware.AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestRequireAdmin(t *testing.T) {
	auth := middleware.NewAdminAuth(testJwtKey)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.AdminContextKey).(*middleware.AdminClaims)
		require.True(t, ok, "admin claims should be in context")
		assert.Equal(t, "operator", claims.Subject)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Admin token",
			authHeader:     "Bearer " + createTestToken(t, middleware.AdminRole, time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Failure - Missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Failure - No Bearer prefix",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Failure - Malformed token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Failure - Wrong key",
			authHeader:     "Bearer " + createTestToken(t, middleware.AdminRole, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Failure - Unexpected signing method",
			authHeader:     "Bearer " + createTestToken(t, middleware.AdminRole, time.Hour, testJwtKey, jwt.SigningMethodHS512),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Failure - Expired token",
			authHeader:     "Bearer " + createTestToken(t, middleware.AdminRole, -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Failure - Not an admin",
			authHeader:     "Bearer " + createTestToken(t, "shopper", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"success": false, "error": {"code": "FORBIDDEN", "message": "Admin role required"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/reset", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			req = req.WithContext(middleware.WithLogger(req.Context(), slog.New(slog.NewTextHandler(io.Discard, nil))))

			rr := httptest.NewRecorder()
			auth.RequireAdmin(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRequireAdminDisabled(t *testing.T) {
	auth := middleware.NewAdminAuth(nil)
	assert.False(t, auth.Enabled())

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	auth.RequireAdmin(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
