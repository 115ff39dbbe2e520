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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAffiliateHandler(t *testing.T) (*AffiliateHandler, *mockUsecase.MockAffiliateUsecase) {
	uc := mockUsecase.NewMockAffiliateUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAffiliateHandler(uc, logger), uc
}

func newAffiliateContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestAffiliateHandler_Register(t *testing.T) {
	h, uc := createTestAffiliateHandler(t)

	uc.EXPECT().
		Register(mock.Anything, "Jean", "jean@example.rw", "+250780000001").
		Return(&entity.Affiliate{ID: uuid.New(), Name: "Jean", PromoCode: "ISOKOA1B2C3"}, nil)

	c, rec := newAffiliateContext(http.MethodPost, "/affiliates",
		`{"name":"Jean","email":"jean@example.rw","phone":"+250780000001"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAffiliateHandler_Register_InvalidEmail(t *testing.T) {
	h, _ := createTestAffiliateHandler(t)

	c, _ := newAffiliateContext(http.MethodPost, "/affiliates",
		`{"name":"Jean","email":"not-an-email"}`)

	err := h.Register(c)
	require.Error(t, err)
}

func TestAffiliateHandler_GetProfile(t *testing.T) {
	h, uc := createTestAffiliateHandler(t)

	affiliateID := uuid.New()
	uc.EXPECT().GetProfile(mock.Anything, affiliateID).Return(&usecase.AffiliateProfile{
		Affiliate:      &entity.Affiliate{ID: affiliateID},
		TotalEarned:    decimal.NewFromInt(4800),
		UnpaidEarnings: decimal.NewFromInt(2400),
	}, nil)

	c, rec := newAffiliateContext(http.MethodGet, "/affiliates/"+affiliateID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(affiliateID.String())

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAffiliateHandler_PromoQR(t *testing.T) {
	h, uc := createTestAffiliateHandler(t)

	affiliateID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().PromoQR(mock.Anything, affiliateID).Return(pngBytes, nil)

	c, rec := newAffiliateContext(http.MethodGet, "/affiliates/"+affiliateID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(affiliateID.String())

	require.NoError(t, h.PromoQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}
