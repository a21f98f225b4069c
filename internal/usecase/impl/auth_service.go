package impl

import (
	"context"
	"regexp"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// slugPattern keeps slugs URL-safe: lowercase letters, digits and hyphens,
// starting and ending with an alphanumeric.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

const minPasswordLength = 8

type authService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	tokens      service.TokenService
	config      *config.Config
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Config      *config.Config
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		txManager:   params.TxManager,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		config:      params.Config,
	}
}

// Register creates a new tenant: the business plus its owner account, then
// issues the first token pair. Both rows are written in one transaction, so a
// duplicate email never leaves an orphaned business behind.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if input.BusinessName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name must not be empty")
	}
	if !slugPattern.MatchString(input.Slug) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug must contain only lowercase letters, digits and hyphens")
	}
	vertical := entity.Vertical(input.Vertical)
	if !vertical.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vertical: " + input.Vertical)
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters long")
	}

	currency := input.Currency
	if currency == "" {
		currency = "TRY"
	}

	// Hash before touching the database, so a hashing failure writes nothing.
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	now := time.Now()
	business := &entity.Business{
		ID:            uuid.New(),
		Name:          input.BusinessName,
		Slug:          input.Slug,
		Vertical:      vertical,
		WhatsAppPhone: input.WhatsApp,
		Currency:      currency,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	account := &entity.PanelAccount{
		ID:           uuid.New(),
		BusinessID:   business.ID,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewBusinessRepository().Create(ctx, business); err != nil {
			return err
		}

		return repos.NewAccountRepository().Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(account)
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

// Refresh exchanges a valid refresh token for a new token pair. The account
// is re-read so a role change takes effect at the next refresh.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	token, err := s.tokens.ValidateToken(refreshToken, s.config.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return s.issueTokens(account)
}

func (s *authService) issueTokens(account *entity.PanelAccount) (*usecase.AuthResult, error) {
	access, refresh, err := s.tokens.GenerateTokens(account.ID, account.BusinessID, string(account.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthResult{
		Account:      account,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
