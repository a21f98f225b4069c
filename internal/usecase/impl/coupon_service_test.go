package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/mocks"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type couponFixture struct {
	couponRepo   *mocks.CouponRepository
	usageRepo    *mocks.CouponUsageRepository
	businessRepo *mocks.BusinessRepository

	business *entity.Business

	service usecase.CouponUsecase
}

func newCouponFixture(t *testing.T) *couponFixture {
	t.Helper()

	f := &couponFixture{
		couponRepo:   &mocks.CouponRepository{},
		usageRepo:    &mocks.CouponUsageRepository{},
		businessRepo: &mocks.BusinessRepository{},
	}
	f.business = &entity.Business{
		ID:       uuid.New(),
		Slug:     "burger-corner",
		Vertical: entity.VerticalFastfood,
		Active:   true,
	}

	f.service = NewCouponService(CouponServiceParams{
		CouponRepo:   f.couponRepo,
		UsageRepo:    f.usageRepo,
		BusinessRepo: f.businessRepo,
	})

	return f
}

func TestCouponService_ValidateCoupon_Valid(t *testing.T) {
	f := newCouponFixture(t)
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(f.business, nil)

	coupon := &entity.Coupon{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Code:       "welcome10",
		Type:       entity.CouponPercentage,
		Value:      decimal.NewFromInt(10),
		Status:     entity.CouponActive,
	}
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "welcome10").Return(coupon, nil)

	validation, err := f.service.ValidateCoupon(context.Background(), "burger-corner", "welcome10", decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.True(t, validation.Discount.Equal(decimal.NewFromInt(20)))
}

func TestCouponService_ValidateCoupon_UnknownCodeIsNotAnError(t *testing.T) {
	f := newCouponFixture(t)
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(f.business, nil)
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "nope").Return(nil, repository.ErrCouponNotFound)

	validation, err := f.service.ValidateCoupon(context.Background(), "burger-corner", "nope", decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.False(t, validation.Valid)
	assert.Equal(t, "unknown code", validation.Reason)
}

func TestCouponService_ValidateCoupon_InactiveBusiness(t *testing.T) {
	f := newCouponFixture(t)

	closed := *f.business
	closed.Active = false
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(&closed, nil)

	_, err := f.service.ValidateCoupon(context.Background(), "burger-corner", "welcome10", decimal.NewFromInt(200))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BUSINESS_INACTIVE", appErr.ErrorCode())
}

func TestCouponService_CreateCoupon(t *testing.T) {
	f := newCouponFixture(t)
	f.couponRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := f.service.CreateCoupon(context.Background(), &entity.Coupon{
		BusinessID: f.business.ID,
		Code:       "  WELCOME10  ",
		Type:       entity.CouponPercentage,
		Value:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, entity.CouponActive, created.Status)
	assert.Zero(t, created.UsageCount)
}

func TestCouponService_CreateCoupon_DuplicateCode(t *testing.T) {
	f := newCouponFixture(t)
	f.couponRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateCouponCode)

	_, err := f.service.CreateCoupon(context.Background(), &entity.Coupon{
		BusinessID: f.business.ID,
		Code:       "welcome10",
		Type:       entity.CouponFixed,
		Value:      decimal.NewFromInt(5),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COUPON_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestCouponService_CreateCoupon_ShapeValidation(t *testing.T) {
	f := newCouponFixture(t)

	start := time.Now()
	end := start.Add(-time.Hour)

	cases := []struct {
		name   string
		coupon entity.Coupon
	}{
		{"empty code", entity.Coupon{Type: entity.CouponFixed, Value: decimal.NewFromInt(5)}},
		{"unknown type", entity.Coupon{Code: "x", Type: "bogus", Value: decimal.NewFromInt(5)}},
		{"zero percentage", entity.Coupon{Code: "x", Type: entity.CouponPercentage, Value: decimal.Zero}},
		{"percentage over 100", entity.Coupon{Code: "x", Type: entity.CouponPercentage, Value: decimal.NewFromInt(101)}},
		{"negative fixed", entity.Coupon{Code: "x", Type: entity.CouponFixed, Value: decimal.NewFromInt(-5)}},
		{"negative usage limit", entity.Coupon{Code: "x", Type: entity.CouponFixed, Value: decimal.NewFromInt(5), UsageLimit: -1}},
		{"end before start", entity.Coupon{Code: "x", Type: entity.CouponFixed, Value: decimal.NewFromInt(5), StartDate: &start, EndDate: &end}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coupon := tc.coupon
			_, err := f.service.CreateCoupon(context.Background(), &coupon)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}

	f.couponRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCouponService_GetCouponUsage(t *testing.T) {
	f := newCouponFixture(t)

	couponID := uuid.New()
	coupon := &entity.Coupon{ID: couponID, BusinessID: f.business.ID, Code: "welcome10"}
	f.couponRepo.On("FindByID", mock.Anything, f.business.ID, couponID).Return(coupon, nil)
	f.usageRepo.On("ListByCoupon", mock.Anything, f.business.ID, couponID).Return([]*entity.CouponUsage{
		{ID: uuid.New(), CouponID: couponID, BusinessID: f.business.ID},
	}, nil)

	usages, err := f.service.GetCouponUsage(context.Background(), f.business.ID, couponID)
	require.NoError(t, err)
	assert.Len(t, usages, 1)
}

func TestCouponService_GetCouponUsage_CrossTenant(t *testing.T) {
	f := newCouponFixture(t)

	couponID := uuid.New()
	f.couponRepo.On("FindByID", mock.Anything, f.business.ID, couponID).Return(nil, repository.ErrCouponNotFound)

	_, err := f.service.GetCouponUsage(context.Background(), f.business.ID, couponID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COUPON_NOT_FOUND", appErr.ErrorCode())
	f.usageRepo.AssertNotCalled(t, "ListByCoupon", mock.Anything, mock.Anything, mock.Anything)
}

func TestCouponService_DeleteCoupon_NotFound(t *testing.T) {
	f := newCouponFixture(t)

	couponID := uuid.New()
	f.couponRepo.On("Delete", mock.Anything, f.business.ID, couponID).Return(repository.ErrCouponNotFound)

	err := f.service.DeleteCoupon(context.Background(), f.business.ID, couponID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COUPON_NOT_FOUND", appErr.ErrorCode())
}
