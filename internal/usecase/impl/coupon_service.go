package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo   repository.CouponRepository
	usageRepo    repository.CouponUsageRepository
	businessRepo repository.BusinessRepository
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo   repository.CouponRepository
	UsageRepo    repository.CouponUsageRepository
	BusinessRepo repository.BusinessRepository
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo:   params.CouponRepo,
		usageRepo:    params.UsageRepo,
		businessRepo: params.BusinessRepo,
	}
}

// ValidateCoupon checks a code for the public storefront without consuming a
// usage. Unknown codes come back as a not-valid result rather than an error,
// so the endpoint never reveals which codes exist.
func (s *couponService) ValidateCoupon(ctx context.Context, businessSlug, code string, subtotal decimal.Decimal) (*entity.CouponValidation, error) {
	business, err := s.businessRepo.FindBySlug(ctx, businessSlug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve business")
	}
	if !business.Active {
		return nil, domainerrors.ErrBusinessInactive
	}

	coupon, err := s.couponRepo.FindByCode(ctx, business.ID, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return &entity.CouponValidation{Reason: "unknown code"}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve coupon")
	}

	validation := coupon.Validate(subtotal, time.Now())

	return &validation, nil
}

// ListCoupons retrieves all coupons of the business.
func (s *couponService) ListCoupons(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	coupons, err := s.couponRepo.List(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// GetCoupon retrieves a single coupon scoped to the business.
func (s *couponService) GetCoupon(ctx context.Context, businessID, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, businessID, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to get coupon")
	}

	return coupon, nil
}

// CreateCoupon persists a new coupon after validating its shape.
func (s *couponService) CreateCoupon(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error) {
	if err := validateCouponShape(coupon); err != nil {
		return nil, err
	}

	coupon.ID = uuid.New()
	coupon.UsageCount = 0
	if coupon.Status == "" {
		coupon.Status = entity.CouponActive
	}
	now := time.Now()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouponCode) {
			return nil, domainerrors.ErrCouponAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return coupon, nil
}

// UpdateCoupon modifies an existing coupon. The usage count is untouched.
func (s *couponService) UpdateCoupon(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error) {
	if err := validateCouponShape(coupon); err != nil {
		return nil, err
	}

	coupon.UpdatedAt = time.Now()

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		switch {
		case errors.Is(err, repository.ErrCouponNotFound):
			return nil, domainerrors.ErrCouponNotFound
		case errors.Is(err, repository.ErrDuplicateCouponCode):
			return nil, domainerrors.ErrCouponAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update coupon")
	}

	return s.GetCoupon(ctx, coupon.BusinessID, coupon.ID)
}

// DeleteCoupon removes a coupon. The usage ledger is retained for auditing.
func (s *couponService) DeleteCoupon(ctx context.Context, businessID, couponID uuid.UUID) error {
	if err := s.couponRepo.Delete(ctx, businessID, couponID); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrCouponNotFound
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

// GetCouponUsage retrieves the coupon's usage ledger, newest first.
func (s *couponService) GetCouponUsage(ctx context.Context, businessID, couponID uuid.UUID) ([]*entity.CouponUsage, error) {
	// Ensure the coupon belongs to the caller before exposing its ledger.
	if _, err := s.GetCoupon(ctx, businessID, couponID); err != nil {
		return nil, err
	}

	usages, err := s.usageRepo.ListByCoupon(ctx, businessID, couponID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupon usage")
	}

	return usages, nil
}

// validateCouponShape enforces the structural rules a coupon must satisfy
// regardless of create or update.
func validateCouponShape(coupon *entity.Coupon) error {
	if entity.NormalizeCouponCode(coupon.Code) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("coupon code must not be empty")
	}

	switch coupon.Type {
	case entity.CouponPercentage:
		if coupon.Value.LessThanOrEqual(decimal.Zero) || coupon.Value.GreaterThan(decimal.NewFromInt(100)) {
			return domainerrors.ErrValidationFailed.WithDetails("percentage value must be between 0 and 100")
		}
	case entity.CouponFixed:
		if coupon.Value.LessThanOrEqual(decimal.Zero) {
			return domainerrors.ErrValidationFailed.WithDetails("fixed value must be positive")
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown coupon type")
	}

	if coupon.MinOrderAmount.IsNegative() || coupon.MaxDiscount.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("amounts must not be negative")
	}
	if coupon.UsageLimit < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("usage limit must not be negative")
	}
	if coupon.StartDate != nil && coupon.EndDate != nil && coupon.EndDate.Before(*coupon.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("end date must not precede start date")
	}

	return nil
}
