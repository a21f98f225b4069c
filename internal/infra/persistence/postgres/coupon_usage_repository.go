package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponUsageRepository implements the repository.CouponUsageRepository
// interface. The ledger is append-only: no update or delete methods exist.
type couponUsageRepository struct {
	db *gorm.DB
}

// NewCouponUsageRepository is the constructor for couponUsageRepository.
func NewCouponUsageRepository(db *gorm.DB) repository.CouponUsageRepository {
	return &couponUsageRepository{
		db: db,
	}
}

// Create appends one ledger row.
func (repo *couponUsageRepository) Create(ctx context.Context, usage *entity.CouponUsage) error {
	usageM := fromCouponUsageDomain(usage)

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid coupon or order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record coupon usage")
	}

	usage.ID = usageM.ID

	return nil
}

// ListByCoupon retrieves the ledger rows of one coupon, newest first.
func (repo *couponUsageRepository) ListByCoupon(ctx context.Context, businessID, couponID uuid.UUID) ([]*entity.CouponUsage, error) {
	var usageModels []*model.CouponUsageModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND coupon_id = ?", businessID, couponID).
		Order("used_at DESC").
		Find(&usageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupon usages")
	}

	usages := make([]*entity.CouponUsage, 0, len(usageModels))
	for _, usageM := range usageModels {
		usages = append(usages, toCouponUsageDomain(usageM))
	}

	return usages, nil
}

// --- Mapper Functions ---

// toCouponUsageDomain converts a GORM CouponUsageModel to a domain CouponUsage entity.
func toCouponUsageDomain(data *model.CouponUsageModel) *entity.CouponUsage {
	if data == nil {
		return nil
	}

	return &entity.CouponUsage{
		ID:             data.ID,
		CouponID:       data.CouponID,
		BusinessID:     data.BusinessID,
		OrderID:        data.OrderID,
		CustomerPhone:  data.CustomerPhone,
		DiscountAmount: data.DiscountAmount,
		UsedAt:         data.UsedAt,
	}
}

// fromCouponUsageDomain converts a domain CouponUsage entity to a GORM CouponUsageModel.
func fromCouponUsageDomain(data *entity.CouponUsage) *model.CouponUsageModel {
	if data == nil {
		return nil
	}

	return &model.CouponUsageModel{
		ID:             data.ID,
		CouponID:       data.CouponID,
		BusinessID:     data.BusinessID,
		OrderID:        data.OrderID,
		CustomerPhone:  data.CustomerPhone,
		DiscountAmount: data.DiscountAmount,
		UsedAt:         data.UsedAt,
	}
}
