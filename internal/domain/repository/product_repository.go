package repository

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindByStore retrieves all products of a store, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)
}
