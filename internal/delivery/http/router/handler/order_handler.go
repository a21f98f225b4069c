package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves the panel's order management endpoints. The tenant
// scope always comes from the access token, never from the request body.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateInternalNoteRequest struct {
	InternalNote string `json:"internal_note"`
}

// ListOrders returns the business's orders, optionally filtered by status.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), businessID, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder returns a single order of the business.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), businessID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateOrderStatus transitions an order. The status field accepts the
// business vertical's own vocabulary.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), businessID, orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// UpdateInternalNote replaces the staff-only note on an order.
func (h *OrderHandler) UpdateInternalNote(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateInternalNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	order, err := h.uc.UpdateInternalNote(c.Request().Context(), businessID, orderID, req.InternalNote)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Internal note updated successfully")
}

// DeleteOrder hard-deletes an order and its line items.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), businessID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": orderID.String()}, "Order deleted successfully")
}
