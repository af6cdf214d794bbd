package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

const AdminRole = "admin"

type adminContextKey struct{}

var AdminContextKey = adminContextKey{}

// AdminClaims is the payload of an operator token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AdminAuth struct {
	jwtKey []byte
}

// NewAdminAuth returns a guard for operator routes. With an empty key the
// guard is disabled, which keeps the local demo usable without tokens.
func NewAdminAuth(jwtKey []byte) *AdminAuth {

	return &AdminAuth{jwtKey: jwtKey}

}

func (m *AdminAuth) Enabled() bool {
	return len(m.jwtKey) > 0
}

func (m *AdminAuth) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &AdminClaims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("JWT parsing failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims.Role != AdminRole {
			logger.Warn("Non-admin token on admin route", slog.String("subject", claims.Subject), slog.String("role", claims.Role))
			response.Error(w, errors.ForbiddenError("Admin role required"))
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, claims)

		scoped := logger.With(slog.String("admin", claims.Subject))
		ctx = WithLogger(ctx, scoped)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
