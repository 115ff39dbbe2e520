package handler

import (
	"log/slog"
	"net/http"

	"isoko/internal/delivery/http/response"
	"isoko/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FollowStoreRequest is the quick-follow payload of the storefront.
type FollowStoreRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// SendChatRequest is the seller chat payload of the storefront.
type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// StoreHandler serves the public storefront API.
type StoreHandler struct {
	uc     usecase.StorefrontUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StorefrontUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListStores returns the active, visible stores.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// GetStore returns a single store with its products.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// FollowStore records a shopper following a store.
func (h *StoreHandler) FollowStore(c echo.Context) error {
	storeID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var req FollowStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid follow input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	follower, err := h.uc.FollowStore(c.Request().Context(), storeID, req.Name, req.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, follower, "Store followed")
}

// ListChat returns the conversation of a store, oldest first.
func (h *StoreHandler) ListChat(c echo.Context) error {
	storeID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	messages, err := h.uc.ListChat(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// SendChat sends a seller message to the admin team.
func (h *StoreHandler) SendChat(c echo.Context) error {
	storeID, err := parseID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var req SendChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendChat(c.Request().Context(), storeID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}
