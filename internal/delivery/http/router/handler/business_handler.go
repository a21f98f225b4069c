package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler serves the public storefront profile endpoints.
type BusinessHandler struct {
	uc usecase.BusinessUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// GetStorefront returns the public profile: the business and its active
// catalog. Inactive or unknown slugs answer 404.
func (h *BusinessHandler) GetStorefront(c echo.Context) error {
	profile, err := h.uc.GetStorefront(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Storefront retrieved successfully")
}

// GetStorefrontQR renders the storefront link as a PNG QR code.
func (h *BusinessHandler) GetStorefrontQR(c echo.Context) error {
	png, err := h.uc.GenerateStorefrontQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
