package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"isoko/internal/delivery/http/validator"
	"isoko/internal/domain/entity"
	mockUsecase "isoko/internal/mocks/usecase"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStoreHandler(t *testing.T) (*StoreHandler, *mockUsecase.MockStorefrontUsecase) {
	uc := mockUsecase.NewMockStorefrontUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStoreHandler(uc, logger), uc
}

func newStoreContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStoreHandler_ListStores(t *testing.T) {
	h, uc := createTestStoreHandler(t)

	uc.EXPECT().ListStores(mock.Anything).Return([]*usecase.PublicStore{
		{Store: &entity.Store{ID: uuid.New(), Name: "Kigali Crafts"}, FollowersCount: 3},
	}, nil)

	c, rec := newStoreContext(http.MethodGet, "/stores", "")
	require.NoError(t, h.ListStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreHandler_GetStore(t *testing.T) {
	h, uc := createTestStoreHandler(t)

	storeID := uuid.New()
	uc.EXPECT().GetStore(mock.Anything, storeID).Return(&usecase.StoreDetail{
		Store: &entity.Store{ID: storeID},
	}, nil)

	c, rec := newStoreContext(http.MethodGet, "/stores/"+storeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	require.NoError(t, h.GetStore(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreHandler_GetStore_InvalidID(t *testing.T) {
	h, _ := createTestStoreHandler(t)

	c, _ := newStoreContext(http.MethodGet, "/stores/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetStore(c)
	require.Error(t, err)
}

func TestStoreHandler_FollowStore(t *testing.T) {
	h, uc := createTestStoreHandler(t)

	storeID := uuid.New()
	uc.EXPECT().
		FollowStore(mock.Anything, storeID, "Aline", "+250780000002").
		Return(&entity.StoreFollower{ID: uuid.New(), StoreID: storeID}, nil)

	c, rec := newStoreContext(http.MethodPost, "/stores/"+storeID.String()+"/follow",
		`{"name":"Aline","phone":"+250780000002"}`)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	require.NoError(t, h.FollowStore(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStoreHandler_FollowStore_MissingPhone(t *testing.T) {
	h, _ := createTestStoreHandler(t)

	storeID := uuid.New()
	c, _ := newStoreContext(http.MethodPost, "/stores/"+storeID.String()+"/follow",
		`{"name":"Aline"}`)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	err := h.FollowStore(c)
	require.Error(t, err)
}

func TestStoreHandler_SendChat(t *testing.T) {
	h, uc := createTestStoreHandler(t)

	storeID := uuid.New()
	uc.EXPECT().
		SendChat(mock.Anything, storeID, "is my listing live yet?").
		Return(&entity.ChatMessage{ID: uuid.New(), StoreID: storeID, SenderType: "seller"}, nil)

	c, rec := newStoreContext(http.MethodPost, "/stores/"+storeID.String()+"/chat",
		`{"message":"is my listing live yet?"}`)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	require.NoError(t, h.SendChat(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
