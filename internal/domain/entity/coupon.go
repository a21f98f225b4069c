package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponType selects how the discount value is interpreted.
type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// CouponStatus enables or disables a coupon independently of its date window.
type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

// Coupon is a per-business discount code. Codes are stored lowercase and are
// unique within a business; matching is case-insensitive.
//
// A zero MinOrderAmount or MaxDiscount means "not set". A zero UsageLimit
// means unlimited. UsageCount only ever grows, and only after an order that
// applies the coupon has been durably persisted.
type Coupon struct {
	ID             uuid.UUID       `json:"id"`
	BusinessID     uuid.UUID       `json:"business_id"`
	Code           string          `json:"code"`
	Type           CouponType      `json:"type"`
	Value          decimal.Decimal `json:"value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	MaxDiscount    decimal.Decimal `json:"max_discount"`
	UsageLimit     int             `json:"usage_limit"`
	UsageCount     int             `json:"usage_count"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Status         CouponStatus    `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CouponValidation is the outcome of validating a coupon against a subtotal.
type CouponValidation struct {
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Reason   string          `json:"reason,omitempty"`
}

// Validation failure reasons, in check order.
const (
	ReasonNotActive    = "not active"
	ReasonNotYetValid  = "not yet valid"
	ReasonExpired      = "expired"
	ReasonBelowMinimum = "below minimum"
	ReasonLimitReached = "limit reached"
)

// NormalizeCouponCode canonicalizes a code for storage and lookup.
func NormalizeCouponCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Validate decides whether the coupon applies to an order with the given
// subtotal at the given time, and computes the discount. It is a pure
// function: consuming a usage happens separately, after the order is
// persisted, so a failed checkout never burns a usage.
//
// Checks short-circuit in a fixed order; the first failure wins.
func (c *Coupon) Validate(subtotal decimal.Decimal, now time.Time) CouponValidation {
	if c.Status != CouponActive {
		return CouponValidation{Reason: ReasonNotActive}
	}
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return CouponValidation{Reason: ReasonNotYetValid}
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return CouponValidation{Reason: ReasonExpired}
	}
	if c.MinOrderAmount.IsPositive() && subtotal.LessThan(c.MinOrderAmount) {
		return CouponValidation{Reason: ReasonBelowMinimum}
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return CouponValidation{Reason: ReasonLimitReached}
	}

	return CouponValidation{Valid: true, Discount: c.discount(subtotal)}
}

// discount computes the raw discount amount, capped at MaxDiscount when set.
func (c *Coupon) discount(subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch c.Type {
	case CouponPercentage:
		amount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponFixed:
		amount = c.Value
	default:
		return decimal.Zero
	}

	if c.MaxDiscount.IsPositive() && amount.GreaterThan(c.MaxDiscount) {
		amount = c.MaxDiscount
	}

	return amount
}

// Exhausted reports whether the usage limit has been fully consumed.
func (c *Coupon) Exhausted() bool {
	return c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit
}
