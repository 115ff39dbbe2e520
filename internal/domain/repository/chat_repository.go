package repository

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRepository defines the interface for chat message database operations.
type ChatRepository interface {
	// Create persists a new chat message.
	Create(ctx context.Context, message *entity.ChatMessage) error

	// FindByStore retrieves the conversation of a store, oldest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error)

	// FindAllNewestFirst retrieves every chat message across all stores,
	// newest first.
	FindAllNewestFirst(ctx context.Context) ([]*entity.ChatMessage, error)

	// FindUnreadSellerMessages retrieves all unread messages sent by sellers,
	// across all stores.
	FindUnreadSellerMessages(ctx context.Context) ([]*entity.ChatMessage, error)

	// MarkSellerMessagesRead marks every seller message of a store as read.
	// Marking an already read conversation is a no-op.
	MarkSellerMessagesRead(ctx context.Context, storeID uuid.UUID) error
}
