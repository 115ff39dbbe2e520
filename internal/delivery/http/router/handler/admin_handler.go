// Package handler contains the HTTP handlers for the application.
package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"isoko/config"
	"isoko/internal/delivery/http/response"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Admin dispatch action names.
const (
	ActionListStores            = "list_stores"
	ActionSetStoreActive        = "set_store_active"
	ActionAddNote               = "add_note"
	ActionDeleteNote            = "delete_note"
	ActionCreatePaymentReminder = "create_payment_reminder"
	ActionSettlePayment         = "settle_payment"
	ActionListDuePayments       = "list_due_payments"
	ActionListChat              = "list_chat"
	ActionSendChat              = "send_chat"
	ActionListAllChats          = "list_all_chats"
	ActionMarkChatRead          = "mark_chat_read"
	ActionListAffiliates        = "list_affiliates"
	ActionSettleAffiliate       = "settle_affiliate"
)

// AdminRequest is the dispatch envelope of the admin portal. Every call
// carries the action name and the shared secret plus action-specific fields.
type AdminRequest struct {
	Action string `json:"action"`
	Secret string `json:"secret"`

	StoreID     string `json:"store_id,omitempty"`
	NoteID      string `json:"note_id,omitempty"`
	PaymentID   string `json:"payment_id,omitempty"`
	AffiliateID string `json:"affiliate_id,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	Note        string `json:"note,omitempty"`
	Message     string `json:"message,omitempty"`
}

// AdminHandler serves the single-endpoint admin dispatch API.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	secret []byte
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, cfg *config.Config, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		secret: []byte(cfg.Admin.Secret),
		logger: logger,
	}
}

// Dispatch routes an admin request to the matching use case. The secret is
// verified before anything else; an invalid secret is rejected for every
// action, known or not, without touching the database.
func (h *AdminHandler) Dispatch(c echo.Context) error {
	var req AdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin request body")
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), h.secret) != 1 {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}

	ctx := c.Request().Context()

	switch req.Action {
	case ActionListStores:
		stores, err := h.uc.ListStores(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, stores, "")

	case ActionSetStoreActive:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		if req.IsActive == nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "is_active is required")
		}
		if err := h.uc.SetStoreActive(ctx, storeID, *req.IsActive); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Store updated")

	case ActionAddNote:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		if req.Note == "" {
			return response.BadRequest(c, "VALIDATION_FAILED", "note is required")
		}
		note, err := h.uc.AddNote(ctx, storeID, req.Note)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, note, "Note added")

	case ActionDeleteNote:
		noteID, err := parseID(req.NoteID, "note_id")
		if err != nil {
			return err
		}
		if err := h.uc.DeleteNote(ctx, noteID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Note deleted")

	case ActionCreatePaymentReminder:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		payment, err := h.uc.CreatePaymentReminder(ctx, storeID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, payment, "Payment reminder created")

	case ActionSettlePayment:
		paymentID, err := parseID(req.PaymentID, "payment_id")
		if err != nil {
			return err
		}
		payment, err := h.uc.SettlePayment(ctx, paymentID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, payment, "Payment settled")

	case ActionListDuePayments:
		duePayments, err := h.uc.ListDuePayments(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, duePayments, "")

	case ActionListChat:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		messages, err := h.uc.ListChat(ctx, storeID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, messages, "")

	case ActionSendChat:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		if req.Message == "" {
			return response.BadRequest(c, "VALIDATION_FAILED", "message is required")
		}
		message, err := h.uc.SendChat(ctx, storeID, req.Message)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, message, "Message sent")

	case ActionListAllChats:
		overviews, err := h.uc.ListAllChats(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, overviews, "")

	case ActionMarkChatRead:
		storeID, err := parseID(req.StoreID, "store_id")
		if err != nil {
			return err
		}
		if err := h.uc.MarkChatRead(ctx, storeID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Chat marked read")

	case ActionListAffiliates:
		summaries, err := h.uc.ListAffiliates(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, summaries, "")

	case ActionSettleAffiliate:
		affiliateID, err := parseID(req.AffiliateID, "affiliate_id")
		if err != nil {
			return err
		}
		if err := h.uc.SettleAffiliate(ctx, affiliateID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Affiliate settled")

	default:
		return response.BadRequest(c, "UNKNOWN_ACTION", "Unknown action: "+req.Action)
	}
}

// parseID parses a required UUID field. Failures surface as a validation
// AppError which the error middleware renders as a 400 response.
func parseID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " is not a valid UUID")
	}

	return id, nil
}
