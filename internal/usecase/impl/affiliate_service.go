package impl

import (
	"context"
	"crypto/rand"
	"time"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/domain/service"
	"isoko/internal/errors"
	"isoko/internal/usecase"

	"github.com/google/uuid"
)

const (
	promoCodePrefix   = "ISOKO"
	promoCodeSuffix   = 6
	promoCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// How many times a colliding promo code is regenerated before giving up.
	promoCodeMaxAttempts = 5
)

type affiliateService struct {
	affRepo     repository.AffiliateRepository
	earningRepo repository.AffiliateEarningRepository
	qrcodeSvc   service.QRCodeService
}

// NewAffiliateService creates a new affiliate service instance
func NewAffiliateService(
	affRepo repository.AffiliateRepository,
	earningRepo repository.AffiliateEarningRepository,
	qrcodeSvc service.QRCodeService,
) usecase.AffiliateUsecase {
	return &affiliateService{
		affRepo:     affRepo,
		earningRepo: earningRepo,
		qrcodeSvc:   qrcodeSvc,
	}
}

// Register creates a new affiliate account with a generated promo code.
// Code collisions are resolved by regenerating; the unique index on the
// promo code column is the source of truth.
func (s *affiliateService) Register(ctx context.Context, name, email, phone string) (*entity.Affiliate, error) {
	for attempt := 0; attempt < promoCodeMaxAttempts; attempt++ {
		code, err := generatePromoCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate promo code")
		}

		affiliate := &entity.Affiliate{
			ID:        uuid.New(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			PromoCode: code,
			IsActive:  true,
			CreatedAt: time.Now(),
		}

		err = s.affRepo.Create(ctx, affiliate)
		if err == nil {
			return affiliate, nil
		}
		if !errors.Is(err, repository.ErrDuplicatePromoCode) {
			return nil, err
		}
	}

	return nil, domainerrors.ErrPromoCodeExhausted
}

// GetProfile retrieves an affiliate with its earnings summary.
func (s *affiliateService) GetProfile(ctx context.Context, affiliateID uuid.UUID) (*usecase.AffiliateProfile, error) {
	affiliate, err := s.affRepo.FindByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, domainerrors.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to load affiliate")
	}

	earnings, err := s.earningRepo.FindByAffiliates(ctx, []uuid.UUID{affiliateID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load affiliate earnings")
	}

	totals, unpaid := earningTotalsByAffiliate(earnings)

	return &usecase.AffiliateProfile{
		Affiliate:      affiliate,
		TotalEarned:    totals[affiliateID],
		UnpaidEarnings: unpaid[affiliateID],
		Earnings:       earnings,
	}, nil
}

// PromoQR renders the affiliate's promo share link as a PNG QR code.
func (s *affiliateService) PromoQR(ctx context.Context, affiliateID uuid.UUID) ([]byte, error) {
	affiliate, err := s.affRepo.FindByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, domainerrors.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to load affiliate")
	}

	pngBytes, err := s.qrcodeSvc.GeneratePromoQR(affiliate.PromoCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate promo QR code")
	}

	return pngBytes, nil
}

// generatePromoCode returns "ISOKO" followed by six random characters
// drawn from digits and uppercase letters.
func generatePromoCode() (string, error) {
	buf := make([]byte, promoCodeSuffix)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, 0, len(promoCodePrefix)+promoCodeSuffix)
	code = append(code, promoCodePrefix...)
	for _, b := range buf {
		code = append(code, promoCodeAlphabet[int(b)%len(promoCodeAlphabet)])
	}

	return string(code), nil
}
