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

type orderFixture struct {
	orderRepo    *mocks.OrderRepository
	businessRepo *mocks.BusinessRepository

	business *entity.Business
	order    *entity.Order

	service usecase.OrderUsecase
}

func newOrderFixture(t *testing.T, vertical entity.Vertical) *orderFixture {
	t.Helper()

	f := &orderFixture{
		orderRepo:    &mocks.OrderRepository{},
		businessRepo: &mocks.BusinessRepository{},
	}

	f.business = &entity.Business{
		ID:       uuid.New(),
		Name:     "Burger Corner",
		Slug:     "burger-corner",
		Vertical: vertical,
		Active:   true,
	}
	now := time.Now()
	f.order = &entity.Order{
		ID:          uuid.New(),
		BusinessID:  f.business.ID,
		OrderNumber: "SF-20260829-ABC234",
		Status:      entity.StatusPending,
		StatusHistory: []entity.StatusChange{
			{Status: entity.StatusPending, Timestamp: now},
		},
		Total:     decimal.NewFromInt(210),
		CreatedAt: now,
		UpdatedAt: now,
	}

	f.businessRepo.On("FindByID", mock.Anything, f.business.ID).Return(f.business, nil).Maybe()

	f.service = NewOrderService(OrderServiceParams{
		OrderRepo:    f.orderRepo,
		BusinessRepo: f.businessRepo,
	})

	return f
}

func TestOrderService_UpdateOrderStatus_LegalTransition(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)
	f.orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := f.service.UpdateOrderStatus(context.Background(), f.business.ID, f.order.ID, "preparing")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPreparing, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, entity.StatusPreparing, updated.StatusHistory[1].Status)
}

func TestOrderService_UpdateOrderStatus_EcommerceVocabulary(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalEcommerce)
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)
	f.orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	// "processing" is the e-commerce alias for "preparing"
	updated, err := f.service.UpdateOrderStatus(context.Background(), f.business.ID, f.order.ID, "processing")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, updated.Status)
	assert.Equal(t, "processing", updated.StatusDisplay)
}

func TestOrderService_UpdateOrderStatus_AliasRejectedForOtherVertical(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil).Maybe()

	// A fastfood tenant does not speak e-commerce vocabulary
	_, err := f.service.UpdateOrderStatus(context.Background(), f.business.ID, f.order.ID, "shipped")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.order.Status = entity.StatusDelivered
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)

	// Delivered is terminal
	_, err := f.service.UpdateOrderStatus(context.Background(), f.business.ID, f.order.ID, "preparing")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_BackwardMoveRejected(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.order.Status = entity.StatusOnWay
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)

	_, err := f.service.UpdateOrderStatus(context.Background(), f.business.ID, f.order.ID, "preparing")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_GetOrder_CrossTenantBehavesAsNotFound(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	otherBusiness := uuid.New()
	f.orderRepo.On("FindByID", mock.Anything, otherBusiness, f.order.ID).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.GetOrder(context.Background(), otherBusiness, f.order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_ListOrders_StatusFilter(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalEcommerce)

	pending := entity.StatusPreparing
	f.orderRepo.On("List", mock.Anything, f.business.ID, &pending).Return([]*entity.Order{f.order}, nil)

	// Vertical alias in the filter
	orders, err := f.service.ListOrders(context.Background(), f.business.ID, "processing")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListOrders_UnknownFilter(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)

	_, err := f.service.ListOrders(context.Background(), f.business.ID, "teleported")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS", appErr.ErrorCode())
}

func TestOrderService_ListOrders_RendersEcommerceVocabulary(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalEcommerce)
	f.order.Status = entity.StatusOnWay
	f.orderRepo.On("List", mock.Anything, f.business.ID, (*entity.OrderStatus)(nil)).Return([]*entity.Order{f.order}, nil)

	orders, err := f.service.ListOrders(context.Background(), f.business.ID, "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	// The canonical state is untouched; the storefront-facing name follows
	// the vertical
	assert.Equal(t, entity.StatusOnWay, orders[0].Status)
	assert.Equal(t, "shipped", orders[0].StatusDisplay)
}

func TestOrderService_GetOrder_RendersCanonicalNameForFastfood(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.order.Status = entity.StatusOnWay
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)

	order, err := f.service.GetOrder(context.Background(), f.business.ID, f.order.ID)
	require.NoError(t, err)
	assert.Equal(t, "on_way", order.StatusDisplay)
}

func TestOrderService_UpdateInternalNote(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.orderRepo.On("FindByID", mock.Anything, f.business.ID, f.order.ID).Return(f.order, nil)
	f.orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := f.service.UpdateInternalNote(context.Background(), f.business.ID, f.order.ID, "call before delivery")
	require.NoError(t, err)
	assert.Equal(t, "call before delivery", updated.InternalNote)
	// Note edits never touch the status history
	assert.Len(t, updated.StatusHistory, 1)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.orderRepo.On("Delete", mock.Anything, f.business.ID, f.order.ID).Return(nil)

	require.NoError(t, f.service.DeleteOrder(context.Background(), f.business.ID, f.order.ID))
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	f := newOrderFixture(t, entity.VerticalFastfood)
	f.orderRepo.On("Delete", mock.Anything, f.business.ID, f.order.ID).Return(repository.ErrOrderNotFound)

	err := f.service.DeleteOrder(context.Background(), f.business.ID, f.order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}
