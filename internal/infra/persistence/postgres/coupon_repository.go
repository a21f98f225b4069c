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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByID retrieves a coupon owned by the given business.
func (repo *couponRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND id = ?", businessID, id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// FindByCode retrieves a coupon by its normalized (lowercase) code.
func (repo *couponRepository) FindByCode(ctx context.Context, businessID uuid.UUID, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND code = ?", businessID, entity.NormalizeCouponCode(code)).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// List retrieves all coupons of the business, newest first.
func (repo *couponRepository) List(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create persists a new coupon. The code is stored normalized.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	coupon.Code = entity.NormalizeCouponCode(coupon.Code)
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouponCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	// Update the entity with generated values
	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Update modifies an existing coupon. The usage count is deliberately
// excluded; it only moves through ConsumeUsage.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	coupon.Code = entity.NormalizeCouponCode(coupon.Code)
	couponM := fromCouponDomain(coupon)

	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("business_id = ? AND id = ?", coupon.BusinessID, coupon.ID).
		Updates(map[string]any{
			"code":             couponM.Code,
			"type":             couponM.Type,
			"value":            couponM.Value,
			"min_order_amount": couponM.MinOrderAmount,
			"max_discount":     couponM.MaxDiscount,
			"usage_limit":      couponM.UsageLimit,
			"start_date":       couponM.StartDate,
			"end_date":         couponM.EndDate,
			"status":           couponM.Status,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCouponCode
		}

		return errors.Wrap(result.Error, "failed to update coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// Delete removes a coupon. The usage ledger is retained for auditing.
func (repo *couponRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("business_id = ? AND id = ?", businessID, id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// ConsumeUsage atomically increments the coupon's usage count. The WHERE
// guard enforces the limit under concurrent checkouts: usage_limit = 0 means
// unlimited, otherwise the increment only lands while usage_count is still
// below the limit.
func (repo *couponRepository) ConsumeUsage(ctx context.Context, businessID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("business_id = ? AND id = ? AND (usage_limit = 0 OR usage_count < usage_limit)", businessID, id).
		Update("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume coupon usage")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing coupon from an exhausted one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CouponModel{}).
			Where("business_id = ? AND id = ?", businessID, id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check coupon existence")
		}
		if count == 0 {
			return repository.ErrCouponNotFound
		}

		return repository.ErrCouponExhausted
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Code:           data.Code,
		Type:           entity.CouponType(data.Type),
		Value:          data.Value,
		MinOrderAmount: data.MinOrderAmount,
		MaxDiscount:    data.MaxDiscount,
		UsageLimit:     data.UsageLimit,
		UsageCount:     data.UsageCount,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		Status:         entity.CouponStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Code:           data.Code,
		Type:           string(data.Type),
		Value:          data.Value,
		MinOrderAmount: data.MinOrderAmount,
		MaxDiscount:    data.MaxDiscount,
		UsageLimit:     data.UsageLimit,
		UsageCount:     data.UsageCount,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
