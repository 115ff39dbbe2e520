package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a single item listed by a store.
type Product struct {
	ID          uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	StoreID     uuid.UUID       `json:"store_id"`    // The store this product belongs to.
	Name        string          `json:"name"`        // The product name.
	Description string          `json:"description"` // Optional product description.
	Price       decimal.Decimal `json:"price"`       // The listed price.
	Currency    string          `json:"currency"`    // ISO currency code, e.g. "RWF".
	Category    string          `json:"category"`    // Optional product category.
	InStock     bool            `json:"in_stock"`    // Whether the product is currently available.
	CreatedAt   time.Time       `json:"created_at"`  // Timestamp of when this record was created.
}
