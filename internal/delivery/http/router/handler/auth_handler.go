package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for panel authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Vertical     string `json:"vertical" validate:"required"`
	WhatsApp     string `json:"whatsapp_phone"`
	Currency     string `json:"currency"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// authResponse is the wire shape of a token pair. The account is reduced to
// its public fields; the password hash never leaves the server.
type authResponse struct {
	AccountID    string `json:"account_id"`
	BusinessID   string `json:"business_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func newAuthResponse(result *usecase.AuthResult) authResponse {
	return authResponse{
		AccountID:    result.Account.ID.String(),
		BusinessID:   result.Account.BusinessID.String(),
		Email:        result.Account.Email,
		Role:         string(result.Account.Role),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
}

// Register handles tenant registration: the business plus its owner account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		BusinessName: req.BusinessName,
		Slug:         req.Slug,
		Vertical:     req.Vertical,
		WhatsApp:     req.WhatsApp,
		Currency:     req.Currency,
		Email:        req.Email,
		Password:     req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(result), "Business registered successfully")
}

// Login handles the panel login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(result), "Login successful")
}

// Refresh handles the token refresh request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(result), "Token refreshed successfully")
}
