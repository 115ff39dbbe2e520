package usecase

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AffiliateProfile is an affiliate's self-service view: the account, the
// commission totals, and the individual earnings.
type AffiliateProfile struct {
	Affiliate      *entity.Affiliate          `json:"affiliate"`
	TotalEarned    decimal.Decimal            `json:"total_earned"`
	UnpaidEarnings decimal.Decimal            `json:"unpaid_earnings"`
	Earnings       []*entity.AffiliateEarning `json:"earnings"`
}

// AffiliateUsecase defines the interface for affiliate self-service use cases.
type AffiliateUsecase interface {
	// Register creates a new affiliate account with a generated promo code.
	Register(ctx context.Context, name, email, phone string) (*entity.Affiliate, error)

	// GetProfile retrieves an affiliate with its earnings summary.
	GetProfile(ctx context.Context, affiliateID uuid.UUID) (*AffiliateProfile, error)

	// PromoQR renders the affiliate's promo share link as a PNG QR code.
	PromoQR(ctx context.Context, affiliateID uuid.UUID) ([]byte, error)
}
