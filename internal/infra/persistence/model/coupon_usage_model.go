package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponUsageModel mirrors the 'coupon_usages' ledger table. Append-only.
type CouponUsageModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CouponID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_coupon_usages_coupon"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_coupon_usages_business"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerPhone  string          `gorm:"type:varchar(30)"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UsedAt         time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CouponUsageModel) TableName() string {
	return "coupon_usages"
}
