package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
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

type checkoutFixture struct {
	businessRepo *mocks.BusinessRepository
	productRepo  *mocks.ProductRepository
	couponRepo   *mocks.CouponRepository
	orderRepo    *mocks.OrderRepository
	usageRepo    *mocks.CouponUsageRepository
	notifier     *mocks.NotificationService
	publisher    *mocks.EventPublisher
	whatsapp     *mocks.WhatsAppService

	business *entity.Business
	burger   *entity.Product
	fries    *entity.Product

	service usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T, cfg *config.Config) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		businessRepo: &mocks.BusinessRepository{},
		productRepo:  &mocks.ProductRepository{},
		couponRepo:   &mocks.CouponRepository{},
		orderRepo:    &mocks.OrderRepository{},
		usageRepo:    &mocks.CouponUsageRepository{},
		notifier:     &mocks.NotificationService{},
		publisher:    &mocks.EventPublisher{},
		whatsapp:     &mocks.WhatsAppService{},
	}

	f.business = &entity.Business{
		ID:            uuid.New(),
		Name:          "Burger Corner",
		Slug:          "burger-corner",
		Vertical:      entity.VerticalFastfood,
		WhatsAppPhone: "905321234567",
		Currency:      "TRY",
		Active:        true,
	}
	f.burger = &entity.Product{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Name:       "Cheeseburger",
		Price:      decimal.NewFromInt(100),
		Stock:      10,
		TrackStock: true,
		Status:     entity.ProductActive,
	}
	f.fries = &entity.Product{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Name:       "Fries",
		Price:      decimal.NewFromInt(50),
		Status:     entity.ProductActive,
		TrackStock: false,
	}

	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			OrderRepo:   f.orderRepo,
			ProductRepo: f.productRepo,
			CouponRepo:  f.couponRepo,
			UsageRepo:   f.usageRepo,
		},
	}

	// The post-commit fan-out runs on a goroutine; it may or may not land
	// before the test finishes.
	f.notifier.On("NotifyTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.whatsapp.On("OrderLink", mock.Anything, mock.Anything).Return("https://wa.me/905321234567?text=order").Maybe()

	f.service = NewCheckoutService(CheckoutServiceParams{
		BusinessRepo: f.businessRepo,
		ProductRepo:  f.productRepo,
		CouponRepo:   f.couponRepo,
		TxManager:    txManager,
		WhatsApp:     f.whatsapp,
		Notifier:     f.notifier,
		Publisher:    f.publisher,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func (f *checkoutFixture) expectHappyBusiness() {
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(f.business, nil)
}

func checkoutInput(f *checkoutFixture) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		BusinessSlug: "burger-corner",
		Customer: entity.CustomerInfo{
			Name:  "Ali Veli",
			Phone: "+905551112233",
		},
		Items: []usecase.CheckoutItemInput{
			{ProductID: f.burger.ID, Quantity: 2},
		},
		ShippingCost:  decimal.NewFromInt(10),
		DeliveryType:  "delivery",
		PaymentMethod: "cash",
	}
}

func TestCheckoutService_PlaceOrder_NoCoupon(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.burger.ID, 2).Return(nil)

	result, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	order := result.Order
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal: %s", order.Subtotal)
	assert.True(t, order.Discount.IsZero())
	assert.True(t, order.Total.Equal(decimal.NewFromInt(210)), "total: %s", order.Total)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "pending", order.StatusDisplay)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, entity.StatusPending, order.StatusHistory[0].Status)
	assert.False(t, result.CouponApplied)
	assert.NotEmpty(t, result.WhatsAppLink)
	assert.Regexp(t, `^SF-\d{8}-[2-9A-HJ-NP-Z]{6}$`, order.OrderNumber)

	// Price snapshot on the line item
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Cheeseburger", order.Items[0].Name)
	assert.True(t, order.Items[0].Total.Equal(decimal.NewFromInt(200)))
}

func TestCheckoutService_PlaceOrder_WithCoupon(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)

	coupon := &entity.Coupon{
		ID:          uuid.New(),
		BusinessID:  f.business.ID,
		Code:        "welcome10",
		Type:        entity.CouponPercentage,
		Value:       decimal.NewFromInt(10),
		MaxDiscount: decimal.NewFromInt(15),
		Status:      entity.CouponActive,
	}
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "welcome10").Return(coupon, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.couponRepo.On("ConsumeUsage", mock.Anything, f.business.ID, coupon.ID).Return(nil)
	f.usageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.burger.ID, 2).Return(nil)

	input := checkoutInput(f)
	input.CouponCode = "welcome10"

	result, err := f.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	// 10% of 200 is 20, capped at 15: total = 200 + 10 - 15 = 195
	order := result.Order
	assert.True(t, order.Discount.Equal(decimal.NewFromInt(15)), "discount: %s", order.Discount)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(195)), "total: %s", order.Total)
	assert.True(t, result.CouponApplied)
	assert.Equal(t, "welcome10", order.CouponCode)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, coupon.ID, *order.CouponID)

	// The ledger row is written inside the same transaction
	f.usageRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(usage *entity.CouponUsage) bool {
		return usage.CouponID == coupon.ID && usage.DiscountAmount.Equal(decimal.NewFromInt(15))
	}))
}

func TestCheckoutService_PlaceOrder_InvalidCouponLenient(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "expired5").Return(nil, repository.ErrCouponNotFound)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.burger.ID, 2).Return(nil)

	input := checkoutInput(f)
	input.CouponCode = "expired5"

	result, err := f.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	// Order proceeds at full price; the reason is surfaced, not the error
	assert.False(t, result.CouponApplied)
	assert.Equal(t, "unknown code", result.CouponReason)
	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(210)))
	f.couponRepo.AssertNotCalled(t, "ConsumeUsage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_InvalidCouponStrict(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{Checkout: config.CheckoutConfig{StrictCoupons: true}})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)

	coupon := &entity.Coupon{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Code:       "closed",
		Type:       entity.CouponFixed,
		Value:      decimal.NewFromInt(5),
		Status:     entity.CouponInactive,
	}
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "closed").Return(coupon, nil)

	input := checkoutInput(f)
	input.CouponCode = "closed"

	_, err := f.service.PlaceOrder(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COUPON_REJECTED", appErr.ErrorCode())
	assert.Equal(t, entity.ReasonNotActive, appErr.Details())
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_ExhaustedCouponRetriesWithoutIt(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)

	coupon := &entity.Coupon{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Code:       "last-one",
		Type:       entity.CouponFixed,
		Value:      decimal.NewFromInt(20),
		UsageLimit: 1,
		Status:     entity.CouponActive,
	}
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "last-one").Return(coupon, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	// The guarded increment loses the race to a concurrent checkout
	f.couponRepo.On("ConsumeUsage", mock.Anything, f.business.ID, coupon.ID).Return(repository.ErrCouponExhausted)
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.burger.ID, 2).Return(nil)

	input := checkoutInput(f)
	input.CouponCode = "last-one"

	result, err := f.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	// Retried at full price
	assert.False(t, result.CouponApplied)
	assert.Equal(t, entity.ReasonLimitReached, result.CouponReason)
	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(210)))
	assert.Nil(t, result.Order.CouponID)
	f.usageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_InsufficientStock(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()

	lowStock := *f.burger
	lowStock.Stock = 1
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(&lowStock, nil)

	_, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_ConcurrentStockRace(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(f.burger, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Stock looked fine at read time but the guarded decrement fails at commit
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.burger.ID, 2).Return(repository.ErrInsufficientStock)

	_, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Cheeseburger", appErr.Details())
}

func TestCheckoutService_PlaceOrder_UntrackedProductSkipsNothing(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.fries.ID).Return(f.fries, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	// The repository no-ops for untracked products; the service still calls it
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.fries.ID, 3).Return(nil)

	input := checkoutInput(f)
	input.Items = []usecase.CheckoutItemInput{{ProductID: f.fries.ID, Quantity: 3}}

	result, err := f.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, result.Order.Subtotal.Equal(decimal.NewFromInt(150)))
}

func TestCheckoutService_PlaceOrder_RejectsBadCarts(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()

	// Empty cart
	input := checkoutInput(f)
	input.Items = nil
	_, err := f.service.PlaceOrder(context.Background(), input)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPTY_CART", appErr.ErrorCode())

	// Zero quantity
	input = checkoutInput(f)
	input.Items[0].Quantity = 0
	_, err = f.service.PlaceOrder(context.Background(), input)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	// Negative shipping
	input = checkoutInput(f)
	input.ShippingCost = decimal.NewFromInt(-1)
	_, err = f.service.PlaceOrder(context.Background(), input)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_InactiveBusiness(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})

	closed := *f.business
	closed.Active = false
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(&closed, nil)

	_, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BUSINESS_INACTIVE", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_UnknownBusiness(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.businessRepo.On("FindBySlug", mock.Anything, "burger-corner").Return(nil, repository.ErrBusinessNotFound)

	_, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BUSINESS_NOT_FOUND", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_InactiveProduct(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()

	draft := *f.burger
	draft.Status = entity.ProductDraft
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.burger.ID).Return(&draft, nil)

	_, err := f.service.PlaceOrder(context.Background(), checkoutInput(f))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_SELLABLE", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_FixedCouponCappedAtSubtotal(t *testing.T) {
	f := newCheckoutFixture(t, &config.Config{})
	f.expectHappyBusiness()
	f.productRepo.On("FindByID", mock.Anything, f.business.ID, f.fries.ID).Return(f.fries, nil)

	coupon := &entity.Coupon{
		ID:         uuid.New(),
		BusinessID: f.business.ID,
		Code:       "big100",
		Type:       entity.CouponFixed,
		Value:      decimal.NewFromInt(100),
		Status:     entity.CouponActive,
	}
	f.couponRepo.On("FindByCode", mock.Anything, f.business.ID, "big100").Return(coupon, nil)
	f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.couponRepo.On("ConsumeUsage", mock.Anything, f.business.ID, coupon.ID).Return(nil)
	f.usageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("DecrementStock", mock.Anything, f.business.ID, f.fries.ID, 1).Return(nil)

	input := checkoutInput(f)
	input.Items = []usecase.CheckoutItemInput{{ProductID: f.fries.ID, Quantity: 1}}
	input.CouponCode = "big100"
	input.ShippingCost = decimal.NewFromInt(10)

	result, err := f.service.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	// Discount capped at the 50 subtotal; shipping still owed
	assert.True(t, result.Order.Discount.Equal(decimal.NewFromInt(50)), "discount: %s", result.Order.Discount)
	assert.True(t, result.Order.Total.Equal(decimal.NewFromInt(10)), "total: %s", result.Order.Total)
}
