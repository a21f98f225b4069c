package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the panel-side order management use cases. Every
// method takes the caller's business ID (from the access token) so a panel
// account can only ever see and mutate its own tenant's orders.
type OrderUsecase interface {
	// ListOrders retrieves the business's orders, newest first. The optional
	// status filter accepts the business vertical's own vocabulary.
	ListOrders(ctx context.Context, businessID uuid.UUID, statusFilter string) ([]*entity.Order, error)

	// GetOrder retrieves a single order. Cross-tenant IDs behave as not found.
	GetOrder(ctx context.Context, businessID, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus transitions an order to the given status (vertical
	// vocabulary accepted) and appends a status-history entry.
	UpdateOrderStatus(ctx context.Context, businessID, orderID uuid.UUID, rawStatus string) (*entity.Order, error)

	// UpdateInternalNote replaces the staff-only note on an order.
	UpdateInternalNote(ctx context.Context, businessID, orderID uuid.UUID, note string) (*entity.Order, error)

	// DeleteOrder hard-deletes an order and its line items.
	DeleteOrder(ctx context.Context, businessID, orderID uuid.UUID) error
}
