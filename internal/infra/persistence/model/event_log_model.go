package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventLogModel is the GORM-specific struct for the 'event_log' table.
// It is an audit record of a store event received by the worker.
type EventLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventType  string         `gorm:"type:text;not null;index"`
	StoreID    *uuid.UUID     `gorm:"type:uuid;index"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null"`
	ReceivedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventLogModel) TableName() string {
	return "event_log"
}
