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
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
	}
}

// ListProducts retrieves the business's products, optionally filtered by status.
func (s *productService) ListProducts(ctx context.Context, businessID uuid.UUID, statusFilter string) ([]*entity.Product, error) {
	var status *entity.ProductStatus
	if statusFilter != "" {
		parsed := entity.ProductStatus(statusFilter)
		if !parsed.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product status: " + statusFilter)
		}
		status = &parsed
	}

	products, err := s.productRepo.List(ctx, businessID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product scoped to the business.
func (s *productService) GetProduct(ctx context.Context, businessID, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, businessID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct persists a new catalog item.
func (s *productService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := validateProductShape(product); err != nil {
		return nil, err
	}

	product.ID = uuid.New()
	if product.Status == "" {
		product.Status = entity.ProductDraft
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct modifies an existing catalog item. Orders keep their
// denormalized snapshots; edits here never rewrite order history.
func (s *productService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := validateProductShape(product); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return s.GetProduct(ctx, product.BusinessID, product.ID)
}

// DeleteProduct removes a product from the catalog.
func (s *productService) DeleteProduct(ctx context.Context, businessID, productID uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, businessID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func validateProductShape(product *entity.Product) error {
	if product.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name must not be empty")
	}
	if product.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if product.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}
	if product.Status != "" && !product.Status.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown product status: " + string(product.Status))
	}

	return nil
}
