package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminNoteModel is the GORM-specific struct for the 'admin_notes' table.
type AdminNoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminNoteModel) TableName() string {
	return "admin_notes"
}
