package repository

import (
	"context"
	"errors"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for admin note persistence.
var (
	// ErrNoteNotFound is returned when an admin note is not found.
	ErrNoteNotFound = errors.New("admin note not found")
)

// AdminNoteRepository defines the interface for admin note database operations.
type AdminNoteRepository interface {
	// Create persists a new note.
	Create(ctx context.Context, note *entity.AdminNote) error

	// Delete removes a note by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByStores retrieves all notes of the given stores in a single
	// query, newest first.
	FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.AdminNote, error)
}
