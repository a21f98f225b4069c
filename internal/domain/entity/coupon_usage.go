package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponUsage is one row of the append-only audit ledger: a record per
// successful coupon application, written in the same transaction as the order.
type CouponUsage struct {
	ID             uuid.UUID       `json:"id"`
	CouponID       uuid.UUID       `json:"coupon_id"`
	BusinessID     uuid.UUID       `json:"business_id"`
	OrderID        uuid.UUID       `json:"order_id"`
	CustomerPhone  string          `json:"customer_phone"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	UsedAt         time.Time       `json:"used_at"`
}
