package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()
	businessID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(accountID, businessID, "owner")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token and inspect its claims
	accessParsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	assert.NoError(t, err)
	assert.True(t, accessParsed.Valid)

	accessClaims, ok := accessParsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, accountID.String(), accessClaims["sub"])
	assert.Equal(t, businessID.String(), accessClaims["businessId"])
	assert.Equal(t, "owner", accessClaims["role"])
	assert.Equal(t, "access", accessClaims["type"])

	// Validate refresh token: same subject, no role
	refreshParsed, err := jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	assert.NoError(t, err)
	assert.True(t, refreshParsed.Valid)

	refreshClaims, ok := refreshParsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, accountID.String(), refreshClaims["sub"])
	assert.Equal(t, "refresh", refreshClaims["type"])
	_, hasRole := refreshClaims["role"]
	assert.False(t, hasRole)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	parsed, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), uuid.New(), "staff")
	assert.NoError(t, err)

	// An access token must not validate against the refresh secret
	_, err = jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
