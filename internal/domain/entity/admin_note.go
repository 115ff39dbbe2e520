package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminNote represents an internal note attached to a store by an
// administrator. Notes are immutable; they can only be created and deleted.
type AdminNote struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the note.
	StoreID   uuid.UUID `json:"store_id"`   // The store the note is attached to.
	Note      string    `json:"note"`       // The note text.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
}
