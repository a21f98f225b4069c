package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput creates a new tenant: the business plus its owner account.
type RegisterInput struct {
	BusinessName string
	Slug         string
	Vertical     string
	WhatsApp     string
	Currency     string
	Email        string
	Password     string
}

// AuthResult is the token pair issued after register, login or refresh.
type AuthResult struct {
	Account      *entity.PanelAccount
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines panel authentication use cases.
type AuthUsecase interface {
	// Register creates a business and its owner account, then issues tokens.
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies credentials and issues a fresh token pair.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}
