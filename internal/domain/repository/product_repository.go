package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product does not exist within the tenant.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a guarded stock decrement would go negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines tenant-scoped catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a product owned by the given business.
	// A product belonging to another tenant behaves as not found.
	FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Product, error)

	// List retrieves the business's products, optionally filtered by status.
	List(ctx context.Context, businessID uuid.UUID, status *entity.ProductStatus) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog. Existing orders keep their
	// denormalized snapshots.
	Delete(ctx context.Context, businessID, id uuid.UUID) error

	// DecrementStock atomically subtracts qty from a stock-tracked product,
	// guarded so stock never goes below zero. Returns ErrInsufficientStock
	// when the guard rejects the decrement. Products with stock tracking
	// disabled are left untouched.
	DecrementStock(ctx context.Context, businessID, id uuid.UUID, qty int) error
}
