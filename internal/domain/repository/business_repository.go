// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
//
// Tenant isolation convention: every method touching tenant-owned data takes
// the owning businessID explicitly, so a query without the tenant filter is a
// compile error rather than a forgotten WHERE clause.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for tenant persistence.
type BusinessRepository interface {
	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBySlug retrieves a single business by its public storefront slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// Create persists a new business entity to the storage.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business entity in the storage.
	Update(ctx context.Context, business *entity.Business) error
}
