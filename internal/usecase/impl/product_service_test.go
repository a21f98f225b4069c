package impl

import (
	"context"
	"testing"

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

func newProductService(repo *mocks.ProductRepository) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{ProductRepo: repo})
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := &mocks.ProductRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := newProductService(repo).CreateProduct(context.Background(), &entity.Product{
		BusinessID: uuid.New(),
		Name:       "Cheeseburger",
		Price:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	// New products default to draft so they don't appear on the storefront
	assert.Equal(t, entity.ProductDraft, created.Status)
}

func TestProductService_CreateProduct_ShapeValidation(t *testing.T) {
	repo := &mocks.ProductRepository{}
	svc := newProductService(repo)

	cases := []struct {
		name    string
		product entity.Product
	}{
		{"empty name", entity.Product{Price: decimal.NewFromInt(10)}},
		{"negative price", entity.Product{Name: "x", Price: decimal.NewFromInt(-1)}},
		{"negative stock", entity.Product{Name: "x", Price: decimal.NewFromInt(1), Stock: -1}},
		{"unknown status", entity.Product{Name: "x", Price: decimal.NewFromInt(1), Status: "misplaced"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := tc.product
			_, err := svc.CreateProduct(context.Background(), &product)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_Filter(t *testing.T) {
	repo := &mocks.ProductRepository{}
	businessID := uuid.New()

	active := entity.ProductActive
	repo.On("List", mock.Anything, businessID, &active).Return([]*entity.Product{
		{ID: uuid.New(), Name: "Cheeseburger"},
	}, nil)

	products, err := newProductService(repo).ListProducts(context.Background(), businessID, "active")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListProducts_UnknownFilter(t *testing.T) {
	repo := &mocks.ProductRepository{}

	_, err := newProductService(repo).ListProducts(context.Background(), uuid.New(), "misplaced")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_GetProduct_CrossTenant(t *testing.T) {
	repo := &mocks.ProductRepository{}
	businessID := uuid.New()
	productID := uuid.New()
	repo.On("FindByID", mock.Anything, businessID, productID).Return(nil, repository.ErrProductNotFound)

	_, err := newProductService(repo).GetProduct(context.Background(), businessID, productID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := &mocks.ProductRepository{}
	businessID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Cheeseburger XL",
		Price:      decimal.NewFromInt(120),
		Status:     entity.ProductActive,
	}
	repo.On("Update", mock.Anything, product).Return(nil)
	repo.On("FindByID", mock.Anything, businessID, product.ID).Return(product, nil)

	updated, err := newProductService(repo).UpdateProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger XL", updated.Name)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	repo := &mocks.ProductRepository{}
	businessID := uuid.New()
	productID := uuid.New()
	repo.On("Delete", mock.Anything, businessID, productID).Return(repository.ErrProductNotFound)

	err := newProductService(repo).DeleteProduct(context.Background(), businessID, productID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
