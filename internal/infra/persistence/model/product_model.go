package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:text;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"type:text;not null;default:'RWF'"`
	Category    string          `gorm:"type:text"`
	InStock     bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
