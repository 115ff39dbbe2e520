package handler

import (
	"log/slog"
	"net/http"

	"isoko/internal/delivery/http/response"
	"isoko/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterAffiliateRequest is the affiliate signup payload.
type RegisterAffiliateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// AffiliateHandler serves the affiliate self-service API.
type AffiliateHandler struct {
	uc     usecase.AffiliateUsecase
	logger *slog.Logger
}

// NewAffiliateHandler is the constructor for AffiliateHandler, injected by Fx.
func NewAffiliateHandler(uc usecase.AffiliateUsecase, logger *slog.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register creates a new affiliate account with a generated promo code.
func (h *AffiliateHandler) Register(c echo.Context) error {
	var req RegisterAffiliateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid affiliate registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	affiliate, err := h.uc.Register(c.Request().Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, affiliate, "Affiliate registered")
}

// GetProfile returns an affiliate with its earnings summary.
func (h *AffiliateHandler) GetProfile(c echo.Context) error {
	affiliateID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), affiliateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// PromoQR returns the affiliate's promo share link as a PNG QR code.
func (h *AffiliateHandler) PromoQR(c echo.Context) error {
	affiliateID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	pngBytes, err := h.uc.PromoQR(c.Request().Context(), affiliateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}
