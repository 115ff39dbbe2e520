package impl

import (
	"context"
	"regexp"
	"testing"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	mockRepo "isoko/internal/mocks/repository"
	mockSvc "isoko/internal/mocks/service"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var promoCodePattern = regexp.MustCompile(`^ISOKO[0-9A-Z]{6}$`)

// affiliateServiceFixtures holds all test dependencies for affiliate service tests.
type affiliateServiceFixtures struct {
	service     usecase.AffiliateUsecase
	affRepo     *mockRepo.MockAffiliateRepository
	earningRepo *mockRepo.MockAffiliateEarningRepository
	qrcodeSvc   *mockSvc.MockQRCodeService
}

func createTestAffiliateService(t *testing.T) affiliateServiceFixtures {
	affRepo := mockRepo.NewMockAffiliateRepository(t)
	earningRepo := mockRepo.NewMockAffiliateEarningRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	return affiliateServiceFixtures{
		service:     NewAffiliateService(affRepo, earningRepo, qrcodeSvc),
		affRepo:     affRepo,
		earningRepo: earningRepo,
		qrcodeSvc:   qrcodeSvc,
	}
}

func TestAffiliateService_Register_GeneratesPromoCode(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()

	fx.affRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Affiliate")).
		Return(nil)

	affiliate, err := fx.service.Register(ctx, "Jean", "jean@example.rw", "+250780000001")
	require.NoError(t, err)
	require.NotNil(t, affiliate)

	assert.Equal(t, "Jean", affiliate.Name)
	assert.True(t, affiliate.IsActive)
	assert.Regexp(t, promoCodePattern, affiliate.PromoCode)
}

func TestAffiliateService_Register_RetriesOnDuplicatePromoCode(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()

	fx.affRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Affiliate")).
		Return(repository.ErrDuplicatePromoCode).
		Once()
	fx.affRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Affiliate")).
		Return(nil).
		Once()

	affiliate, err := fx.service.Register(ctx, "Jean", "jean@example.rw", "")
	require.NoError(t, err)
	assert.Regexp(t, promoCodePattern, affiliate.PromoCode)
}

func TestAffiliateService_Register_GivesUpAfterRepeatedCollisions(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()

	fx.affRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Affiliate")).
		Return(repository.ErrDuplicatePromoCode).
		Times(promoCodeMaxAttempts)

	affiliate, err := fx.service.Register(ctx, "Jean", "jean@example.rw", "")
	assert.ErrorIs(t, err, domainerrors.ErrPromoCodeExhausted)
	assert.Nil(t, affiliate)
}

func TestAffiliateService_GetProfile_SumsEarnings(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	affiliate := &entity.Affiliate{ID: affiliateID, Name: "Jean", PromoCode: "ISOKOA1B2C3"}

	earnings := []*entity.AffiliateEarning{
		{AffiliateID: affiliateID, Amount: decimal.NewFromInt(2400), IsPaid: true},
		{AffiliateID: affiliateID, Amount: decimal.NewFromInt(2400), IsPaid: false},
	}

	fx.affRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(affiliate, nil)

	fx.earningRepo.EXPECT().
		FindByAffiliates(ctx, []uuid.UUID{affiliateID}).
		Return(earnings, nil)

	profile, err := fx.service.GetProfile(ctx, affiliateID)
	require.NoError(t, err)

	assert.Equal(t, affiliate, profile.Affiliate)
	assert.True(t, profile.TotalEarned.Equal(decimal.NewFromInt(4800)))
	assert.True(t, profile.UnpaidEarnings.Equal(decimal.NewFromInt(2400)))
	assert.Equal(t, earnings, profile.Earnings)
}

func TestAffiliateService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(nil, repository.ErrAffiliateNotFound)

	profile, err := fx.service.GetProfile(ctx, affiliateID)
	assert.ErrorIs(t, err, domainerrors.ErrAffiliateNotFound)
	assert.Nil(t, profile)
}

func TestAffiliateService_PromoQR(t *testing.T) {
	fx := createTestAffiliateService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.affRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(&entity.Affiliate{ID: affiliateID, PromoCode: "ISOKOA1B2C3"}, nil)

	fx.qrcodeSvc.EXPECT().
		GeneratePromoQR("ISOKOA1B2C3").
		Return(pngBytes, nil)

	got, err := fx.service.PromoQR(ctx, affiliateID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got)
}
