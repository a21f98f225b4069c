package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// StorefrontProfile is the public view of a business: the tenant itself plus
// its sellable catalog. Draft and archived products never appear here.
type StorefrontProfile struct {
	Business *entity.Business
	Products []*entity.Product
}

// BusinessUsecase defines the public storefront profile use cases.
type BusinessUsecase interface {
	// GetStorefront resolves a slug into the public profile. Inactive
	// businesses behave as not found.
	GetStorefront(ctx context.Context, slug string) (*StorefrontProfile, error)

	// GenerateStorefrontQR renders the business's storefront link as a PNG QR
	// code for print media.
	GenerateStorefrontQR(ctx context.Context, slug string) ([]byte, error)
}
