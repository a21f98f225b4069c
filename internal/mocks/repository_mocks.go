// Package mocks provides testify mocks for the repository and service
// interfaces used across use case tests.
package mocks

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// BusinessRepository is a mock of repository.BusinessRepository.
type BusinessRepository struct {
	mock.Mock
}

func (m *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if business, ok := args.Get(0).(*entity.Business); ok {
		return business, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *BusinessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	args := m.Called(ctx, slug)
	if business, ok := args.Get(0).(*entity.Business); ok {
		return business, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *BusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *BusinessRepository) Update(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

// AccountRepository is a mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PanelAccount, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.PanelAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.PanelAccount, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.PanelAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, account *entity.PanelAccount) error {
	return m.Called(ctx, account).Error(0)
}

// ProductRepository is a mock of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, businessID, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context, businessID uuid.UUID, status *entity.ProductStatus) ([]*entity.Product, error) {
	args := m.Called(ctx, businessID, status)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return m.Called(ctx, businessID, id).Error(0)
}

func (m *ProductRepository) DecrementStock(ctx context.Context, businessID, id uuid.UUID, qty int) error {
	return m.Called(ctx, businessID, id, qty).Error(0)
}

// CouponRepository is a mock of repository.CouponRepository.
type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Coupon, error) {
	args := m.Called(ctx, businessID, id)
	if coupon, ok := args.Get(0).(*entity.Coupon); ok {
		return coupon, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CouponRepository) FindByCode(ctx context.Context, businessID uuid.UUID, code string) (*entity.Coupon, error) {
	args := m.Called(ctx, businessID, code)
	if coupon, ok := args.Get(0).(*entity.Coupon); ok {
		return coupon, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CouponRepository) List(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	args := m.Called(ctx, businessID)
	if coupons, ok := args.Get(0).([]*entity.Coupon); ok {
		return coupons, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *CouponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *CouponRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return m.Called(ctx, businessID, id).Error(0)
}

func (m *CouponRepository) ConsumeUsage(ctx context.Context, businessID, id uuid.UUID) error {
	return m.Called(ctx, businessID, id).Error(0)
}

// CouponUsageRepository is a mock of repository.CouponUsageRepository.
type CouponUsageRepository struct {
	mock.Mock
}

func (m *CouponUsageRepository) Create(ctx context.Context, usage *entity.CouponUsage) error {
	return m.Called(ctx, usage).Error(0)
}

func (m *CouponUsageRepository) ListByCoupon(ctx context.Context, businessID, couponID uuid.UUID) ([]*entity.CouponUsage, error) {
	args := m.Called(ctx, businessID, couponID)
	if usages, ok := args.Get(0).([]*entity.CouponUsage); ok {
		return usages, args.Error(1)
	}

	return nil, args.Error(1)
}

// OrderRepository is a mock of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) FindByID(ctx context.Context, businessID, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, businessID, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, businessID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	args := m.Called(ctx, businessID, status)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	return m.Called(ctx, businessID, id).Error(0)
}

// TransactionManager runs the callback against a fixed repository factory,
// without any real transaction. Tests assert the writes on the underlying
// repository mocks.
type TransactionManager struct {
	Factory repository.RepositoryFactory

	// ExecuteErr short-circuits Execute without invoking the callback.
	ExecuteErr error

	// Calls counts Execute invocations, so tests can assert that a
	// multi-write operation ran in a single transaction.
	Calls int
}

func (m *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.Calls++
	if m.ExecuteErr != nil {
		return m.ExecuteErr
	}

	return fn(m.Factory)
}

// RepositoryFactory hands out the configured mocks.
type RepositoryFactory struct {
	BusinessRepo repository.BusinessRepository
	AccountRepo  repository.AccountRepository
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	CouponRepo   repository.CouponRepository
	UsageRepo    repository.CouponUsageRepository
}

func (f *RepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return f.BusinessRepo
}

func (f *RepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.AccountRepo
}

func (f *RepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *RepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *RepositoryFactory) NewCouponRepository() repository.CouponRepository {
	return f.CouponRepo
}

func (f *RepositoryFactory) NewCouponUsageRepository() repository.CouponUsageRepository {
	return f.UsageRepo
}
