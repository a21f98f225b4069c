package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func activeCoupon() *Coupon {
	return &Coupon{
		Code:   "promo10",
		Type:   CouponPercentage,
		Value:  decimal.NewFromInt(10),
		Status: CouponActive,
	}
}

func TestCouponValidate_PercentageWithCap(t *testing.T) {
	coupon := activeCoupon()
	coupon.MaxDiscount = decimal.NewFromInt(15)

	// cart [{price:100, qty:2}] -> subtotal 200, 10% = 20, capped at 15
	result := coupon.Validate(decimal.NewFromInt(200), time.Now())

	assert.True(t, result.Valid)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(15)), "got %s", result.Discount)
}

func TestCouponValidate_PercentageUncapped(t *testing.T) {
	coupon := activeCoupon()

	result := coupon.Validate(decimal.NewFromInt(200), time.Now())

	assert.True(t, result.Valid)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(20)))
}

func TestCouponValidate_FixedWithCap(t *testing.T) {
	coupon := &Coupon{
		Type:        CouponFixed,
		Value:       decimal.NewFromInt(50),
		MaxDiscount: decimal.NewFromInt(30),
		Status:      CouponActive,
	}

	result := coupon.Validate(decimal.NewFromInt(500), time.Now())

	assert.True(t, result.Valid)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(30)))
}

func TestCouponValidate_ChecksShortCircuitInOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		mutate func(*Coupon)
		reason string
	}{
		{
			name:   "inactive wins over everything",
			mutate: func(c *Coupon) { c.Status = CouponInactive; c.EndDate = &past },
			reason: ReasonNotActive,
		},
		{
			name:   "not yet valid",
			mutate: func(c *Coupon) { c.StartDate = &future },
			reason: ReasonNotYetValid,
		},
		{
			name:   "expired",
			mutate: func(c *Coupon) { c.EndDate = &past },
			reason: ReasonExpired,
		},
		{
			name:   "below minimum",
			mutate: func(c *Coupon) { c.MinOrderAmount = decimal.NewFromInt(500) },
			reason: ReasonBelowMinimum,
		},
		{
			name:   "limit reached",
			mutate: func(c *Coupon) { c.UsageLimit = 1; c.UsageCount = 1 },
			reason: ReasonLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := activeCoupon()
			tt.mutate(coupon)

			result := coupon.Validate(decimal.NewFromInt(200), now)

			assert.False(t, result.Valid)
			assert.Equal(t, tt.reason, result.Reason)
			assert.True(t, result.Discount.IsZero())
		})
	}
}

func TestCouponValidate_DateWindowBoundsAreInclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	coupon := activeCoupon()
	coupon.StartDate = &now
	coupon.EndDate = &now

	result := coupon.Validate(decimal.NewFromInt(100), now)

	assert.True(t, result.Valid)
}

func TestCouponValidate_ZeroLimitMeansUnlimited(t *testing.T) {
	coupon := activeCoupon()
	coupon.UsageLimit = 0
	coupon.UsageCount = 10000

	result := coupon.Validate(decimal.NewFromInt(100), time.Now())

	assert.True(t, result.Valid)
}

func TestCouponExhausted(t *testing.T) {
	coupon := activeCoupon()
	assert.False(t, coupon.Exhausted())

	coupon.UsageLimit = 3
	coupon.UsageCount = 2
	assert.False(t, coupon.Exhausted())

	coupon.UsageCount = 3
	assert.True(t, coupon.Exhausted())
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "promo10", NormalizeCouponCode("  PROMO10 "))
	assert.Equal(t, "promo10", NormalizeCouponCode("Promo10"))
}
