package usecase

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicStore is a store listed on the public storefront, enriched with
// its follower count.
type PublicStore struct {
	Store          *entity.Store `json:"store"`
	FollowersCount int           `json:"followers_count"`
}

// StoreDetail is a single storefront page: the store plus its products.
type StoreDetail struct {
	Store    *entity.Store     `json:"store"`
	Products []*entity.Product `json:"products"`
}

// StorefrontUsecase defines the interface for the public storefront use cases.
type StorefrontUsecase interface {
	// ListStores retrieves the active, visible stores with follower counts.
	ListStores(ctx context.Context) ([]*PublicStore, error)

	// GetStore retrieves a single store and its products.
	GetStore(ctx context.Context, storeID uuid.UUID) (*StoreDetail, error)

	// FollowStore records a shopper following a store.
	FollowStore(ctx context.Context, storeID uuid.UUID, name, phone string) (*entity.StoreFollower, error)

	// ListChat retrieves the conversation of a store, oldest first.
	ListChat(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error)

	// SendChat sends a seller message to the admin team.
	SendChat(ctx context.Context, storeID uuid.UUID, message string) (*entity.ChatMessage, error)
}
