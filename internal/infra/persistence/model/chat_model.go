package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminChatModel is the GORM-specific struct for the 'admin_chats' table.
// It represents a single message in the admin-seller conversation of a store.
type AdminChatModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderType string    `gorm:"type:text;not null"`
	Message    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminChatModel) TableName() string {
	return "admin_chats"
}
