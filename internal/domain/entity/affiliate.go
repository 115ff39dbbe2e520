package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Affiliate represents a referral partner who brings sellers onto the
// marketplace in exchange for a commission on their subscription payments.
type Affiliate struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the affiliate.
	Name      string    `json:"name"`       // The affiliate's name.
	Email     string    `json:"email"`      // The affiliate's contact email.
	Phone     string    `json:"phone"`      // The affiliate's phone number.
	PromoCode string    `json:"promo_code"` // Unique referral code shared with prospective sellers.
	IsActive  bool      `json:"is_active"`  // Whether the affiliate account is active.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
}

// AffiliateEarning represents a commission credited to an affiliate when a
// payment of one of their referred stores is settled. The amount is fixed
// at settlement time.
type AffiliateEarning struct {
	ID          uuid.UUID       `json:"id"`           // The Global Unique Identifier (GUID) for the earning.
	AffiliateID uuid.UUID       `json:"affiliate_id"` // The affiliate credited with the commission.
	StoreID     uuid.UUID       `json:"store_id"`     // The referred store whose payment produced the commission.
	PaymentID   uuid.UUID       `json:"payment_id"`   // The settled payment the commission derives from.
	Amount      decimal.Decimal `json:"amount"`       // The commission amount.
	IsPaid      bool            `json:"is_paid"`      // Whether the commission has been paid out.
	PaidAt      *time.Time      `json:"paid_at"`      // Timestamp of payout, nil while unpaid.
	CreatedAt   time.Time       `json:"created_at"`   // Timestamp of when this record was created.
}
