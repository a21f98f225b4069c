// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItemInput is one requested order line: a product reference and a
// quantity. Name and price are resolved server-side from the catalog.
type CheckoutItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput is everything a storefront visitor submits to place an order.
type CheckoutInput struct {
	BusinessSlug  string
	Customer      entity.CustomerInfo
	Items         []CheckoutItemInput
	CouponCode    string
	ShippingCost  decimal.Decimal
	DeliveryType  string
	PaymentMethod string
}

// CheckoutResult is the outcome of a successful checkout. CouponApplied and
// CouponReason surface what happened to a submitted coupon when the pipeline
// runs in lenient mode and ignores an invalid code.
type CheckoutResult struct {
	Order         *entity.Order
	WhatsAppLink  string
	CouponApplied bool
	CouponReason  string
}

// CheckoutUsecase runs the public order placement pipeline: resolve the
// business, validate the cart against the catalog, apply the coupon, compute
// totals, persist everything atomically and fan out notifications.
type CheckoutUsecase interface {
	// PlaceOrder executes the checkout pipeline for an anonymous storefront
	// visitor. It returns the persisted order and the wa.me handoff link.
	PlaceOrder(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)
}
