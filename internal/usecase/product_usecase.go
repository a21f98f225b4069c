package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the panel's catalog management use cases.
type ProductUsecase interface {
	// ListProducts retrieves the business's products, optionally filtered by
	// catalog status ("active", "draft", ...). An empty filter returns all.
	ListProducts(ctx context.Context, businessID uuid.UUID, statusFilter string) ([]*entity.Product, error)

	// GetProduct retrieves a single product. Cross-tenant IDs behave as not found.
	GetProduct(ctx context.Context, businessID, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct persists a new catalog item.
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// UpdateProduct modifies an existing catalog item.
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// DeleteProduct removes a product; existing orders keep their snapshots.
	DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error
}
