package middleware

import (
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers to read.
const (
	ContextAccountID  = "accountID"
	ContextBusinessID = "businessID"
	ContextRole       = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the Bearer access token and puts the caller's
// account ID, business ID and role on the request context. Every panel
// handler below this middleware is implicitly scoped to that business.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		// Refresh tokens must not open panel sessions
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Token is not an access token")
		}

		sub, _ := claims["sub"].(string)
		accountID, err := uuid.Parse(sub)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
		}

		businessIDStr, _ := claims["businessId"].(string)
		businessID, err := uuid.Parse(businessIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid business ID in token")
		}

		role, _ := claims["role"].(string)

		c.Set(ContextAccountID, accountID)
		c.Set(ContextBusinessID, businessID)
		c.Set(ContextRole, role)

		return next(c)
	}
}

// RequireRole checks that the authenticated account carries the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// BusinessID reads the tenant scope set by Authenticate.
func BusinessID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextBusinessID).(uuid.UUID)

	return id, ok
}

// AccountID reads the authenticated account set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextAccountID).(uuid.UUID)

	return id, ok
}
