package repository

import (
	"context"
	"errors"
	"time"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for affiliate persistence.
var (
	// ErrAffiliateNotFound is returned when an affiliate is not found.
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrDuplicatePromoCode is returned when a generated promo code collides
	// with an existing one.
	ErrDuplicatePromoCode = errors.New("duplicate promo code")
)

// AffiliateRepository defines the interface for affiliate database operations.
type AffiliateRepository interface {
	// Create persists a new affiliate.
	Create(ctx context.Context, affiliate *entity.Affiliate) error

	// FindAll retrieves every affiliate, newest first.
	FindAll(ctx context.Context) ([]*entity.Affiliate, error)

	// FindByID retrieves an affiliate by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error)
}

// AffiliateEarningRepository defines the interface for commission database operations.
type AffiliateEarningRepository interface {
	// Create persists a new earning.
	Create(ctx context.Context, earning *entity.AffiliateEarning) error

	// FindByAffiliates retrieves all earnings of the given affiliates in a
	// single query, newest first.
	FindByAffiliates(ctx context.Context, affiliateIDs []uuid.UUID) ([]*entity.AffiliateEarning, error)

	// SettleUnpaid marks every unpaid earning of an affiliate as paid at the
	// given time. Settling an affiliate with no unpaid earnings is a no-op.
	SettleUnpaid(ctx context.Context, affiliateID uuid.UUID, paidAt time.Time) error
}
