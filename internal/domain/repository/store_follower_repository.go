package repository

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreFollowerRepository defines the interface for follower database operations.
type StoreFollowerRepository interface {
	// Create persists a new follower.
	Create(ctx context.Context, follower *entity.StoreFollower) error

	// FindByStores retrieves all followers of the given stores in a single query.
	FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.StoreFollower, error)
}
