package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutHandler serves the public order placement endpoint.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type checkoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type checkoutCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Note    string `json:"note"`
}

type checkoutRequest struct {
	BusinessSlug  string                  `json:"business_slug" validate:"required"`
	Customer      checkoutCustomerRequest `json:"customer"`
	Items         []checkoutItemRequest   `json:"items" validate:"required,min=1,dive"`
	CouponCode    string                  `json:"coupon_code"`
	ShippingCost  decimal.Decimal         `json:"shipping_cost"`
	DeliveryType  string                  `json:"delivery_type"`
	PaymentMethod string                  `json:"payment_method"`
}

type checkoutResponse struct {
	Order         *entity.Order `json:"order"`
	WhatsAppLink  string        `json:"whatsapp_link,omitempty"`
	CouponApplied bool          `json:"coupon_applied"`
	CouponReason  string        `json:"coupon_reason,omitempty"`
}

// parseCheckoutItems maps the request lines to use case inputs. On a malformed
// product id it returns the offending raw value.
func parseCheckoutItems(reqItems []checkoutItemRequest) ([]usecase.CheckoutItemInput, string) {
	items := make([]usecase.CheckoutItemInput, 0, len(reqItems))
	for _, item := range reqItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, item.ProductID
		}
		items = append(items, usecase.CheckoutItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	return items, ""
}

// PlaceOrder handles the public checkout request.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items, badID := parseCheckoutItems(req.Items)
	if badID != "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID: "+badID)
	}

	result, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.CheckoutInput{
		BusinessSlug: req.BusinessSlug,
		Customer: entity.CustomerInfo{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			Email:   req.Customer.Email,
			Note:    req.Customer.Note,
		},
		Items:         items,
		CouponCode:    req.CouponCode,
		ShippingCost:  req.ShippingCost,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkoutResponse{
		Order:         result.Order,
		WhatsAppLink:  result.WhatsAppLink,
		CouponApplied: result.CouponApplied,
		CouponReason:  result.CouponReason,
	}, "Order placed successfully")
}

// fastfoodOrderRequest is the payload the fastfood storefront sends: a flat
// delivery_fee and a top-level customer_note instead of the unified
// shipping_cost / nested customer note.
type fastfoodOrderRequest struct {
	BusinessSlug  string                  `json:"business_slug" validate:"required"`
	Customer      checkoutCustomerRequest `json:"customer"`
	Items         []checkoutItemRequest   `json:"items" validate:"required,min=1,dive"`
	CouponCode    string                  `json:"coupon_code"`
	DeliveryFee   decimal.Decimal         `json:"delivery_fee"`
	DeliveryType  string                  `json:"delivery_type"`
	PaymentMethod string                  `json:"payment_method"`
	CustomerNote  string                  `json:"customer_note"`
}

// PlaceFastfoodOrder handles the fastfood checkout alias. The payload differs
// from the unified one in field naming only; it runs the same pipeline.
func (h *CheckoutHandler) PlaceFastfoodOrder(c echo.Context) error {
	var req fastfoodOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items, badID := parseCheckoutItems(req.Items)
	if badID != "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID: "+badID)
	}

	customer := entity.CustomerInfo{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		Email:   req.Customer.Email,
		Note:    req.Customer.Note,
	}
	if customer.Note == "" {
		customer.Note = req.CustomerNote
	}

	result, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.CheckoutInput{
		BusinessSlug:  req.BusinessSlug,
		Customer:      customer,
		Items:         items,
		CouponCode:    req.CouponCode,
		ShippingCost:  req.DeliveryFee,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkoutResponse{
		Order:         result.Order,
		WhatsAppLink:  result.WhatsAppLink,
		CouponApplied: result.CouponApplied,
		CouponReason:  result.CouponReason,
	}, "Order placed successfully")
}
