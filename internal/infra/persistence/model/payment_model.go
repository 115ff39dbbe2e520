package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorePaymentModel is the GORM-specific struct for the 'store_payments' table.
// It represents a monthly subscription charge raised against a store.
type StorePaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate   time.Time       `gorm:"not null;index"`
	IsPaid    bool            `gorm:"not null;default:false"`
	PaidAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StorePaymentModel) TableName() string {
	return "store_payments"
}
