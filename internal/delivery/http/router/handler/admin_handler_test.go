package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"isoko/config"
	"isoko/internal/delivery/http/response"
	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	mockUsecase "isoko/internal/mocks/usecase"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "test-secret"

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	uc := mockUsecase.NewMockAdminUsecase(t)

	cfg := &config.Config{
		Admin: config.AdminConfig{Secret: testAdminSecret},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAdminHandler(uc, cfg, logger), uc
}

// dispatch runs a JSON body through the dispatch endpoint and returns the
// recorder plus the error the handler returned, if any.
func dispatch(t *testing.T, h *AdminHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, h.Dispatch(c)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestAdminHandler_Dispatch_RejectsWrongSecret(t *testing.T) {
	// No expectations are registered on the mock, so this test also proves
	// the use case layer is never touched when the secret is wrong.
	h, _ := createTestAdminHandler(t)

	rec, err := dispatch(t, h, `{"action":"list_stores","secret":"wrong"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestAdminHandler_Dispatch_RejectsWrongSecretForUnknownAction(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	rec, err := dispatch(t, h, `{"action":"drop_all_tables","secret":"wrong"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_Dispatch_RejectsMissingSecret(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	rec, err := dispatch(t, h, `{"action":"list_stores"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_Dispatch_UnknownActionWithValidSecret(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	rec, err := dispatch(t, h, `{"action":"reboot","secret":"`+testAdminSecret+`"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_ACTION", resp.Error.Code)
}

func TestAdminHandler_Dispatch_MalformedBody(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	rec, err := dispatch(t, h, `{"action":`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestAdminHandler_Dispatch_ListStores(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	overview := []*usecase.StoreOverview{
		{Store: &entity.Store{ID: uuid.New(), Name: "Kigali Crafts"}},
	}
	uc.EXPECT().ListStores(mock.Anything).Return(overview, nil)

	rec, err := dispatch(t, h, `{"action":"list_stores","secret":"`+testAdminSecret+`"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestAdminHandler_Dispatch_SetStoreActive(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	storeID := uuid.New()
	uc.EXPECT().SetStoreActive(mock.Anything, storeID, false).Return(nil)

	body := `{"action":"set_store_active","secret":"` + testAdminSecret +
		`","store_id":"` + storeID.String() + `","is_active":false}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Store updated", resp.Message)
}

func TestAdminHandler_Dispatch_SetStoreActive_MissingFlag(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	body := `{"action":"set_store_active","secret":"` + testAdminSecret +
		`","store_id":"` + uuid.NewString() + `"}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestAdminHandler_Dispatch_MissingStoreID(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	_, err := dispatch(t, h, `{"action":"list_chat","secret":"`+testAdminSecret+`"}`)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "store_id is required", appErr.Details())
}

func TestAdminHandler_Dispatch_InvalidStoreID(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	body := `{"action":"mark_chat_read","secret":"` + testAdminSecret + `","store_id":"not-a-uuid"}`
	_, err := dispatch(t, h, body)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "store_id is not a valid UUID", appErr.Details())
}

func TestAdminHandler_Dispatch_SendChat_MissingMessage(t *testing.T) {
	h, _ := createTestAdminHandler(t)

	body := `{"action":"send_chat","secret":"` + testAdminSecret +
		`","store_id":"` + uuid.NewString() + `"}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestAdminHandler_Dispatch_SettlePayment(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	paymentID := uuid.New()
	settled := &entity.Payment{ID: paymentID, Amount: decimal.NewFromInt(8000), IsPaid: true}
	uc.EXPECT().SettlePayment(mock.Anything, paymentID).Return(settled, nil)

	body := `{"action":"settle_payment","secret":"` + testAdminSecret +
		`","payment_id":"` + paymentID.String() + `"}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment settled", resp.Message)
}

func TestAdminHandler_Dispatch_SettlePayment_AlreadySettled(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	paymentID := uuid.New()
	uc.EXPECT().
		SettlePayment(mock.Anything, paymentID).
		Return(nil, domainerrors.ErrPaymentAlreadySettled)

	body := `{"action":"settle_payment","secret":"` + testAdminSecret +
		`","payment_id":"` + paymentID.String() + `"}`
	_, err := dispatch(t, h, body)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadySettled)
}

func TestAdminHandler_Dispatch_AddNote(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	storeID := uuid.New()
	note := &entity.AdminNote{ID: uuid.New(), StoreID: storeID, Note: "called seller, stock confirmed"}
	uc.EXPECT().AddNote(mock.Anything, storeID, "called seller, stock confirmed").Return(note, nil)

	body := `{"action":"add_note","secret":"` + testAdminSecret +
		`","store_id":"` + storeID.String() + `","note":"called seller, stock confirmed"}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Note added", resp.Message)
}

func TestAdminHandler_Dispatch_SettleAffiliate(t *testing.T) {
	h, uc := createTestAdminHandler(t)

	affiliateID := uuid.New()
	uc.EXPECT().SettleAffiliate(mock.Anything, affiliateID).Return(nil)

	body := `{"action":"settle_affiliate","secret":"` + testAdminSecret +
		`","affiliate_id":"` + affiliateID.String() + `"}`
	rec, err := dispatch(t, h, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Affiliate settled", resp.Message)
}
