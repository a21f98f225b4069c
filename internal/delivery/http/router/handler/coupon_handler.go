package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CouponHandler serves the public coupon validation endpoint and the panel's
// coupon management.
type CouponHandler struct {
	uc usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

type validateCouponRequest struct {
	BusinessSlug string          `json:"business_slug" validate:"required"`
	Code         string          `json:"code" validate:"required"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type couponRequest struct {
	Code           string          `json:"code" validate:"required"`
	Type           string          `json:"type" validate:"required"`
	Value          decimal.Decimal `json:"value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	MaxDiscount    decimal.Decimal `json:"max_discount"`
	UsageLimit     int             `json:"usage_limit"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	Status         string          `json:"status"`
}

func (r *couponRequest) toEntity(businessID uuid.UUID) *entity.Coupon {
	return &entity.Coupon{
		BusinessID:     businessID,
		Code:           r.Code,
		Type:           entity.CouponType(r.Type),
		Value:          r.Value,
		MinOrderAmount: r.MinOrderAmount,
		MaxDiscount:    r.MaxDiscount,
		UsageLimit:     r.UsageLimit,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Status:         entity.CouponStatus(r.Status),
	}
}

// ValidateCoupon checks a code against a prospective subtotal for the public
// storefront. An unknown code yields a not-valid result, never an error.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon validation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	validation, err := h.uc.ValidateCoupon(c.Request().Context(), req.BusinessSlug, req.Code, req.Subtotal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, validation, "Coupon validated")
}

// ListCoupons returns all coupons of the business.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	coupons, err := h.uc.ListCoupons(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}

// GetCoupon returns a single coupon.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	coupon, err := h.uc.GetCoupon(c.Request().Context(), businessID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon retrieved successfully")
}

// CreateCoupon adds a discount code to the business.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.CreateCoupon(c.Request().Context(), req.toEntity(businessID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Coupon created successfully")
}

// UpdateCoupon modifies an existing coupon. The usage count is never
// writable through this endpoint.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coupon := req.toEntity(businessID)
	coupon.ID = couponID

	updated, err := h.uc.UpdateCoupon(c.Request().Context(), coupon)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Coupon updated successfully")
}

// DeleteCoupon removes a coupon; its usage ledger is retained.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), businessID, couponID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": couponID.String()}, "Coupon deleted successfully")
}

// GetCouponUsage returns the coupon's usage ledger, newest first.
func (h *CouponHandler) GetCouponUsage(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	usages, err := h.uc.GetCouponUsage(c.Request().Context(), businessID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usages, "Coupon usage retrieved successfully")
}
