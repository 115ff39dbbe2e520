package repository

import (
	"context"

	"isoko/internal/domain/entity"
)

// EventLogRepository defines the interface for event audit log operations.
type EventLogRepository interface {
	// Create appends a received event to the audit log.
	Create(ctx context.Context, log *entity.EventLog) error
}
