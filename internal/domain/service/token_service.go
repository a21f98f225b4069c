// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts issuing and validating the panel's JWT pair.
// Access tokens carry the account ID, its business ID and role so panel
// handlers can enforce tenant isolation statelessly.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for an account.
	GenerateTokens(accountID, businessID uuid.UUID, role string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
