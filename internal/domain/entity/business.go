// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vertical identifies which storefront module a business runs.
type Vertical string

const (
	VerticalFastfood   Vertical = "fastfood"
	VerticalEcommerce  Vertical = "ecommerce"
	VerticalRental     Vertical = "rental"
	VerticalRealEstate Vertical = "realestate"
	VerticalCoffee     Vertical = "coffee"
)

// Valid reports whether the vertical is one of the supported modules.
func (v Vertical) Valid() bool {
	switch v {
	case VerticalFastfood, VerticalEcommerce, VerticalRental, VerticalRealEstate, VerticalCoffee:
		return true
	}

	return false
}

// Business is the tenant entity. All catalog, coupon and order data is scoped
// by its ID; public storefront requests address it by slug.
type Business struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`           // URL-safe identifier, unique across tenants.
	Vertical      Vertical  `json:"vertical"`       // Which storefront module this tenant runs.
	Phone         string    `json:"phone"`          // Contact phone shown on the storefront.
	WhatsAppPhone string    `json:"whatsapp_phone"` // Number used for wa.me order deep links.
	Currency      string    `json:"currency"`       // ISO 4217 code, e.g. "TRY".
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
