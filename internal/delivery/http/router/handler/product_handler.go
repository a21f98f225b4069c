package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the panel's catalog management endpoints.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	TrackStock bool            `json:"track_stock"`
	Status     string          `json:"status"`
	Images     []string        `json:"images"`
}

func (r *productRequest) toEntity(businessID uuid.UUID) (*entity.Product, error) {
	product := &entity.Product{
		BusinessID: businessID,
		Name:       r.Name,
		Price:      r.Price,
		Stock:      r.Stock,
		TrackStock: r.TrackStock,
		Status:     entity.ProductStatus(r.Status),
		Images:     r.Images,
	}

	if r.CategoryID != "" {
		categoryID, err := uuid.Parse(r.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = &categoryID
	}

	return product, nil
}

// ListProducts returns the business's catalog, optionally filtered by status.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), businessID, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns a single catalog item.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), businessID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct adds a catalog item to the business.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := req.toEntity(businessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Product created successfully")
}

// UpdateProduct modifies an existing catalog item.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := req.toEntity(businessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}
	product.ID = productID

	updated, err := h.uc.UpdateProduct(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Product updated successfully")
}

// DeleteProduct removes a catalog item. Existing orders keep their snapshots.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	businessID, ok := middleware.BusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing business scope")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), businessID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": productID.String()}, "Product deleted successfully")
}
