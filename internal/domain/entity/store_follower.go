package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreFollower represents a shopper following a store for updates.
type StoreFollower struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the follower record.
	StoreID   uuid.UUID `json:"store_id"`   // The store being followed.
	Name      string    `json:"name"`       // The follower's name.
	Phone     string    `json:"phone"`      // The follower's phone number.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
}
