// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// notificationTimeout bounds the fire-and-forget fan-out after a checkout
// commits; the customer response never waits on it.
const notificationTimeout = 10 * time.Second

type checkoutService struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	couponRepo   repository.CouponRepository
	txManager    repository.TransactionManager
	whatsapp     service.WhatsAppService
	notifier     service.NotificationService
	publisher    service.EventPublisher
	config       *config.Config
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	CouponRepo   repository.CouponRepository
	TxManager    repository.TransactionManager
	WhatsApp     service.WhatsAppService
	Notifier     service.NotificationService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		couponRepo:   params.CouponRepo,
		txManager:    params.TxManager,
		whatsapp:     params.WhatsApp,
		notifier:     params.Notifier,
		publisher:    params.Publisher,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// PlaceOrder runs the checkout pipeline:
//
//  1. resolve the business by slug and reject inactive tenants
//  2. resolve every cart line against the catalog and snapshot name/price
//  3. resolve and validate the coupon against the subtotal
//  4. compute totals with decimal arithmetic
//  5. persist order, coupon usage and stock decrements in one transaction
//  6. fan out notifications after commit, off the request path
//
// In lenient coupon mode (the default) an invalid or exhausted coupon is
// dropped and the order proceeds at full price; strict mode rejects instead.
func (s *checkoutService) PlaceOrder(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	business, err := s.businessRepo.FindBySlug(ctx, input.BusinessSlug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve business")
	}
	if !business.Active {
		return nil, domainerrors.ErrBusinessInactive
	}

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if input.ShippingCost.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping cost must not be negative")
	}

	items, err := s.resolveItems(ctx, business.ID, input.Items)
	if err != nil {
		return nil, err
	}
	subtotal := entity.SubtotalOf(items)

	now := time.Now()
	coupon, validation, err := s.resolveCoupon(ctx, business.ID, input.CouponCode, subtotal, now)
	if err != nil {
		return nil, err
	}

	result, err := s.persistOrder(ctx, business, input, items, subtotal, coupon, validation, now)
	if err == nil || !errors.Is(err, repository.ErrCouponExhausted) {
		return result, err
	}

	// The usage increment lost a race to the last remaining usage.
	if s.strictCoupons() {
		return nil, domainerrors.ErrCouponRejected.WithDetails(entity.ReasonLimitReached)
	}

	// Lenient mode: retry once at full price.
	s.logger.LogAttrs(ctx, slog.LevelInfo, "coupon exhausted during checkout, retrying without it",
		slog.String("businessId", business.ID.String()),
		slog.String("couponCode", input.CouponCode),
	)
	result, err = s.persistOrder(ctx, business, input, items, subtotal, nil, entity.CouponValidation{Reason: entity.ReasonLimitReached}, now)

	return result, err
}

// resolveItems maps cart lines to denormalized order items, enforcing catalog
// state and stock along the way.
func (s *checkoutService) resolveItems(ctx context.Context, businessID uuid.UUID, lines []usecase.CheckoutItemInput) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, businessID, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(line.ProductID.String())
			}

			return nil, errors.Wrap(err, "failed to resolve product")
		}

		if !product.Sellable(line.Quantity) {
			if product.Status == entity.ProductActive {
				return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
			}

			return nil, domainerrors.ErrProductNotSellable.WithDetails(product.Name)
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Total:     product.Price.Mul(qty),
		})
	}

	return items, nil
}

// resolveCoupon looks up and validates the submitted code. A nil coupon in
// the return means "proceed without discount"; the validation carries the
// reason when a code was dropped in lenient mode.
func (s *checkoutService) resolveCoupon(ctx context.Context, businessID uuid.UUID, code string, subtotal decimal.Decimal, now time.Time) (*entity.Coupon, entity.CouponValidation, error) {
	if code == "" {
		return nil, entity.CouponValidation{}, nil
	}

	coupon, err := s.couponRepo.FindByCode(ctx, businessID, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			if s.strictCoupons() {
				return nil, entity.CouponValidation{}, domainerrors.ErrCouponRejected.WithDetails("unknown code")
			}

			return nil, entity.CouponValidation{Reason: "unknown code"}, nil
		}

		return nil, entity.CouponValidation{}, errors.Wrap(err, "failed to resolve coupon")
	}

	validation := coupon.Validate(subtotal, now)
	if !validation.Valid {
		if s.strictCoupons() {
			return nil, entity.CouponValidation{}, domainerrors.ErrCouponRejected.WithDetails(validation.Reason)
		}

		return nil, validation, nil
	}

	return coupon, validation, nil
}

// persistOrder assembles the order aggregate and writes everything in a
// single transaction: the order with its items, the coupon usage increment
// and ledger row, and the guarded stock decrements.
func (s *checkoutService) persistOrder(
	ctx context.Context,
	business *entity.Business,
	input *usecase.CheckoutInput,
	items []entity.OrderItem,
	subtotal decimal.Decimal,
	coupon *entity.Coupon,
	validation entity.CouponValidation,
	now time.Time,
) (*usecase.CheckoutResult, error) {
	discount := decimal.Zero
	if coupon != nil {
		discount = validation.Discount
		// A fixed coupon can exceed the subtotal; an order never goes negative.
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
	}

	order := &entity.Order{
		ID:            uuid.New(),
		BusinessID:    business.ID,
		OrderNumber:   entity.NewOrderNumber(now),
		Customer:      input.Customer,
		Items:         items,
		Subtotal:      subtotal,
		ShippingCost:  input.ShippingCost,
		Discount:      discount,
		Total:         entity.TotalOf(subtotal, input.ShippingCost, discount),
		Status:        entity.StatusPending,
		DeliveryType:  input.DeliveryType,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: "unpaid",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.StatusDisplay = order.Status.Display(business.Vertical)
	order.StatusHistory = []entity.StatusChange{{Status: entity.StatusPending, Timestamp: now}}
	if coupon != nil {
		couponID := coupon.ID
		order.CouponID = &couponID
		order.CouponCode = coupon.Code
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		if coupon != nil {
			if err := repos.NewCouponRepository().ConsumeUsage(ctx, business.ID, coupon.ID); err != nil {
				return err
			}
			usage := &entity.CouponUsage{
				ID:             uuid.New(),
				CouponID:       coupon.ID,
				BusinessID:     business.ID,
				OrderID:        order.ID,
				CustomerPhone:  order.Customer.Phone,
				DiscountAmount: discount,
				UsedAt:         now,
			}
			if err := repos.NewCouponUsageRepository().Create(ctx, usage); err != nil {
				return err
			}
		}

		productRepo := repos.NewProductRepository()
		for _, item := range order.Items {
			if err := productRepo.DecrementStock(ctx, business.ID, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(item.Name)
				}

				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyAsync(business, order)

	result := &usecase.CheckoutResult{
		Order:         order,
		WhatsAppLink:  s.whatsapp.OrderLink(business, order),
		CouponApplied: coupon != nil,
		CouponReason:  validation.Reason,
	}

	return result, nil
}

// notifyAsync fans the committed order out to the panel push topic and the
// event bus. Failures are logged, never surfaced to the customer.
func (s *checkoutService) notifyAsync(business *entity.Business, order *entity.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		title := "New order " + order.OrderNumber
		body := order.Customer.Name + " - " + order.Total.StringFixed(2) + " " + business.Currency
		data := map[string]string{
			"orderId":     order.ID.String(),
			"orderNumber": order.OrderNumber,
		}
		if err := s.notifier.NotifyTopic(ctx, "orders-"+business.ID.String(), title, body, data); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "order push notification failed",
				slog.String("orderId", order.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		event := &service.OrderEvent{
			OrderID:     order.ID.String(),
			OrderNumber: order.OrderNumber,
			BusinessID:  business.ID.String(),
			Vertical:    string(business.Vertical),
			Total:       order.Total.StringFixed(2),
			CouponCode:  order.CouponCode,
			ItemCount:   len(order.Items),
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "order event publish failed",
				slog.String("orderId", order.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (s *checkoutService) strictCoupons() bool {
	return s.config != nil && s.config.Checkout.StrictCoupons
}
