package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponUsageRepository defines the append-only coupon usage ledger.
type CouponUsageRepository interface {
	// Create appends one ledger row. Rows are never updated or deleted.
	Create(ctx context.Context, usage *entity.CouponUsage) error

	// ListByCoupon retrieves the ledger rows of one coupon, newest first.
	ListByCoupon(ctx context.Context, businessID, couponID uuid.UUID) ([]*entity.CouponUsage, error)
}
