package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Images are stored as a JSONB
// array of URLs.
type ProductModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index:idx_products_business"`
	CategoryID *uuid.UUID `gorm:"type:uuid"`
	Name       string     `gorm:"type:varchar(200);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock      int             `gorm:"not null;default:0"`
	TrackStock bool            `gorm:"not null;default:false"`
	Status     string          `gorm:"type:varchar(10);not null;default:'draft'"`
	Images     []byte          `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
