package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when a panel account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence operations for panel accounts.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PanelAccount, error)

	// FindByEmail retrieves a single account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.PanelAccount, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.PanelAccount) error
}
