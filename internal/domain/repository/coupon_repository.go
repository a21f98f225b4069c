package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCouponNotFound is returned when a coupon does not exist within the tenant.
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponExhausted is returned when a guarded usage increment would
	// exceed the coupon's usage limit.
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	// ErrDuplicateCouponCode is returned when a code already exists for the business.
	ErrDuplicateCouponCode = errors.New("coupon code already exists")
)

// CouponRepository defines tenant-scoped coupon persistence.
type CouponRepository interface {
	// FindByID retrieves a coupon owned by the given business.
	FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Coupon, error)

	// FindByCode retrieves a coupon by its normalized (lowercase) code.
	FindByCode(ctx context.Context, businessID uuid.UUID, code string) (*entity.Coupon, error)

	// List retrieves all coupons of the business.
	List(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update modifies an existing coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon. The usage ledger is retained.
	Delete(ctx context.Context, businessID, id uuid.UUID) error

	// ConsumeUsage atomically increments the coupon's usage count, guarded by
	// the usage limit (usage_count < usage_limit when a limit is set).
	// Returns ErrCouponExhausted when the guard rejects the increment.
	ConsumeUsage(ctx context.Context, businessID, id uuid.UUID) error
}
