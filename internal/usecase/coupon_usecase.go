package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponUsecase covers both the public validation endpoint and the panel's
// coupon management.
type CouponUsecase interface {
	// ValidateCoupon checks a code against a prospective subtotal for the
	// public storefront, without consuming a usage. An unknown code yields a
	// not-valid result, not an error, so the endpoint never leaks which codes
	// exist.
	ValidateCoupon(ctx context.Context, businessSlug, code string, subtotal decimal.Decimal) (*entity.CouponValidation, error)

	// ListCoupons retrieves all coupons of the business.
	ListCoupons(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error)

	// GetCoupon retrieves a single coupon.
	GetCoupon(ctx context.Context, businessID, couponID uuid.UUID) (*entity.Coupon, error)

	// CreateCoupon persists a new coupon for the business.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error)

	// UpdateCoupon modifies an existing coupon.
	UpdateCoupon(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error)

	// DeleteCoupon removes a coupon; its usage ledger is retained.
	DeleteCoupon(ctx context.Context, businessID, couponID uuid.UUID) error

	// GetCouponUsage retrieves the coupon's usage ledger, newest first.
	GetCouponUsage(ctx context.Context, businessID, couponID uuid.UUID) ([]*entity.CouponUsage, error)
}
