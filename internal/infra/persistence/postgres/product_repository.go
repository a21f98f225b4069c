package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
// Every query carries the owning business_id so cross-tenant product IDs
// behave as not found.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product owned by the given business.
func (repo *productRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND id = ?", businessID, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves the business's products, optionally filtered by status.
func (repo *productRepository) List(ctx context.Context, businessID uuid.UUID, status *entity.ProductStatus) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("business_id = ? AND id = ?", product.BusinessID, product.ID).
		Updates(map[string]any{
			"category_id": productM.CategoryID,
			"name":        productM.Name,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"track_stock": productM.TrackStock,
			"status":      productM.Status,
			"images":      productM.Images,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product from the catalog. Existing orders keep their
// denormalized snapshots.
func (repo *productRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("business_id = ? AND id = ?", businessID, id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically subtracts qty from a stock-tracked product.
// The WHERE guard keeps stock from going negative under concurrent checkouts;
// zero rows affected means the guard rejected the decrement (or the product
// doesn't track stock, which is a no-op by contract).
func (repo *productRepository) DecrementStock(ctx context.Context, businessID, id uuid.UUID, qty int) error {
	if qty <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Select("id", "track_stock").
		Where("business_id = ? AND id = ?", businessID, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for stock decrement")
	}

	if !productM.TrackStock {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("business_id = ? AND id = ? AND track_stock = TRUE AND stock >= ?", businessID, id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var images []string
	if len(data.Images) != 0 {
		// A malformed images payload degrades to an empty gallery rather than
		// failing the whole read.
		_ = json.Unmarshal(data.Images, &images)
	}

	return &entity.Product{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Price:      data.Price,
		Stock:      data.Stock,
		TrackStock: data.TrackStock,
		Status:     entity.ProductStatus(data.Status),
		Images:     images,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, _ := json.Marshal(images)

	return &model.ProductModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Price:      data.Price,
		Stock:      data.Stock,
		TrackStock: data.TrackStock,
		Status:     string(data.Status),
		Images:     imagesJSON,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
