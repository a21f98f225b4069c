package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist within the tenant.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines tenant-scoped order persistence.
type OrderRepository interface {
	// FindByID retrieves an order owned by the given business.
	// Cross-tenant IDs behave as not found.
	FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Order, error)

	// List retrieves the business's orders, newest first, optionally filtered
	// by status.
	List(ctx context.Context, businessID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error)

	// Create persists a new order together with its line items and the
	// initial status-history entry.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists the mutable slice of an order: status, status history,
	// payment status and internal note. Line items and totals are immutable
	// after creation.
	Update(ctx context.Context, order *entity.Order) error

	// Delete hard-deletes an order and its line items. Panel-only, unaudited.
	Delete(ctx context.Context, businessID, id uuid.UUID) error
}
