// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// FindAll retrieves every store, newest first.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// FindPublic retrieves stores that are active and visible, newest first.
	FindPublic(ctx context.Context) ([]*entity.Store, error)

	// FindByID retrieves a store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// SetActive toggles the subscription state of a store.
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
}
