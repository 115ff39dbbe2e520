package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// It represents a seller storefront on the marketplace.
type StoreModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                  string     `gorm:"type:text;not null"`
	Description           string     `gorm:"type:text"`
	OwnerName             string     `gorm:"type:text;not null"`
	Email                 string     `gorm:"type:text;not null"`
	Phone                 string     `gorm:"type:text"`
	WhatsApp              string     `gorm:"type:text;column:whatsapp"`
	Category              string     `gorm:"type:text"`
	IsActive              bool       `gorm:"not null;default:true"`
	IsVisible             bool       `gorm:"not null;default:true"`
	ReferredByAffiliateID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreFollowerModel is the GORM-specific struct for the 'store_followers' table.
type StoreFollowerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreFollowerModel) TableName() string {
	return "store_followers"
}
