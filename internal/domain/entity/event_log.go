package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventLog is an audit record of a store event received by the worker.
type EventLog struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the log entry.
	EventType  string     `json:"event_type"`  // The event type, e.g. "payment.settled".
	StoreID    *uuid.UUID `json:"store_id"`    // The store the event concerns, if any.
	Payload    []byte     `json:"payload"`     // The raw event payload as received.
	ReceivedAt time.Time  `json:"received_at"` // Timestamp of when the worker received the event.
}
