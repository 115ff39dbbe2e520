package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AffiliateModel is the GORM-specific struct for the 'affiliates' table.
type AffiliateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text"`
	PromoCode string    `gorm:"type:text;not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AffiliateModel) TableName() string {
	return "affiliates"
}

// AffiliateEarningModel is the GORM-specific struct for the 'affiliate_earnings' table.
// It represents a commission credited to an affiliate for a settled store payment.
type AffiliateEarningModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AffiliateID uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsPaid      bool            `gorm:"not null;default:false"`
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AffiliateEarningModel) TableName() string {
	return "affiliate_earnings"
}
