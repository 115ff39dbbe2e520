package service

import (
	"context"
)

// Store event types published by the admin and storefront services.
const (
	EventPaymentSettled   = "payment.settled"
	EventStoreModerated   = "store.moderated"
	EventChatMessage      = "chat.message"
	EventAffiliateSettled = "affiliate.settled"
)

// StoreEvent represents a domain event to be processed by the event worker
type StoreEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`
	StoreID     string `json:"store_id,omitempty"`
	PaymentID   string `json:"payment_id,omitempty"`
	AffiliateID string `json:"affiliate_id,omitempty"`
	Amount      string `json:"amount,omitempty"` // Decimal string, set for settlement events
	OccurredAt  string `json:"occurred_at"`      // RFC 3339 timestamp
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes a store event for async processing
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
