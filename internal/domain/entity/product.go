package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the catalog lifecycle state of a product.
// Only active products are sellable through checkout.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

// Valid reports whether the status is a known catalog state.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductDraft, ProductArchived:
		return true
	}

	return false
}

// Product is a catalog item owned by a business. Orders reference products by
// ID but store denormalized name/price snapshots, so later catalog edits never
// rewrite order history.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	BusinessID uuid.UUID       `json:"business_id"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	TrackStock bool            `json:"track_stock"` // When false, checkout neither enforces nor decrements stock.
	Status     ProductStatus   `json:"status"`
	Images     []string        `json:"images"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Sellable reports whether checkout may accept qty units of this product.
// Missing-tenant and cross-tenant checks happen at the repository boundary;
// this covers catalog state and stock.
func (p *Product) Sellable(qty int) bool {
	if p.Status != ProductActive || qty <= 0 {
		return false
	}
	if p.TrackStock && p.Stock < qty {
		return false
	}

	return true
}
