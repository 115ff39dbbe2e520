package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents a single message in the admin-seller conversation
// of a store. SenderType is either "admin" or "seller".
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the message.
	StoreID    uuid.UUID `json:"store_id"`    // The store conversation this message belongs to.
	SenderType string    `json:"sender_type"` // Who sent the message: "admin" or "seller".
	Message    string    `json:"message"`     // The message text.
	IsRead     bool      `json:"is_read"`     // Whether the recipient has read the message.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this record was created.
}
