package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponModel mirrors the 'coupons' table. Codes are stored lowercase; the
// composite unique index makes them unique per business.
type CouponModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_coupons_business_code"`
	Code           string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_coupons_business_code"`
	Type           string          `gorm:"type:varchar(10);not null"`
	Value          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MinOrderAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MaxDiscount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UsageLimit     int             `gorm:"not null;default:0"`
	UsageCount     int             `gorm:"not null;default:0"`
	StartDate      *time.Time      `gorm:"index"`
	EndDate        *time.Time      `gorm:"index"`
	Status         string          `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
