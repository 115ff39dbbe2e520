package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a monthly subscription charge raised against a store.
type Payment struct {
	ID        uuid.UUID       `json:"id"`         // The Global Unique Identifier (GUID) for the payment.
	StoreID   uuid.UUID       `json:"store_id"`   // The store this payment belongs to.
	Amount    decimal.Decimal `json:"amount"`     // The amount due.
	DueDate   time.Time       `json:"due_date"`   // When the payment falls due.
	IsPaid    bool            `json:"is_paid"`    // Whether the payment has been settled.
	PaidAt    *time.Time      `json:"paid_at"`    // Timestamp of settlement, nil while unpaid.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of when this record was created.
}

// DuePayment is a Payment joined with the contact details of its store,
// used by the overdue payment listing.
type DuePayment struct {
	Payment
	StoreName  string `json:"store_name"`  // Display name of the owing store.
	StoreEmail string `json:"store_email"` // Contact email of the owing store.
	StorePhone string `json:"store_phone"` // Contact phone of the owing store.
}
