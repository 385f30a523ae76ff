package middleware

import (
	"net/http"
	"strings"

	"shiptrack/internal/delivery/http/response"
	"shiptrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextAccountIDKey is the echo context key carrying the authenticated account ID.
const ContextAccountIDKey = "accountID"

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Bearer session token and stores the account ID
// on the request context. All token failures get the same response body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		accountID, err := m.tokens.Validate(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(ContextAccountIDKey, accountID)

		return next(c)
	}
}
