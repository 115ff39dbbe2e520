package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "isoko/internal/delivery/context"
	"isoko/internal/domain/constants"
	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/domain/service"
	"isoko/internal/errors"
	"isoko/internal/usecase"

	"github.com/google/uuid"
)

type storefrontService struct {
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	followerRepo repository.StoreFollowerRepository
	chatRepo     repository.ChatRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewStorefrontService creates a new storefront service instance
func NewStorefrontService(
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	followerRepo repository.StoreFollowerRepository,
	chatRepo repository.ChatRepository,
	publisher service.EventPublisher,
) usecase.StorefrontUsecase {
	return &storefrontService{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		followerRepo: followerRepo,
		chatRepo:     chatRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListStores retrieves the active, visible stores with follower counts
// attached from a single follower fetch.
func (s *storefrontService) ListStores(ctx context.Context) ([]*usecase.PublicStore, error) {
	stores, err := s.storeRepo.FindPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public stores")
	}

	if len(stores) == 0 {
		return []*usecase.PublicStore{}, nil
	}

	storeIDs := make([]uuid.UUID, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	followers, err := s.followerRepo.FindByStores(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch followers for public stores")
	}

	counts := followerCountByStore(followers)

	publicStores := make([]*usecase.PublicStore, 0, len(stores))
	for _, store := range stores {
		publicStores = append(publicStores, &usecase.PublicStore{
			Store:          store,
			FollowersCount: counts[store.ID],
		})
	}

	return publicStores, nil
}

// GetStore retrieves a single store and its products.
func (s *storefrontService) GetStore(ctx context.Context, storeID uuid.UUID) (*usecase.StoreDetail, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store")
	}

	products, err := s.productRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return &usecase.StoreDetail{
		Store:    store,
		Products: products,
	}, nil
}

// FollowStore records a shopper following a store.
func (s *storefrontService) FollowStore(ctx context.Context, storeID uuid.UUID, name, phone string) (*entity.StoreFollower, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store for follow")
	}

	follower := &entity.StoreFollower{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now(),
	}

	if err := s.followerRepo.Create(ctx, follower); err != nil {
		return nil, err
	}

	return follower, nil
}

// ListChat retrieves the conversation of a store, oldest first.
func (s *storefrontService) ListChat(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error) {
	messages, err := s.chatRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return messages, nil
}

// SendChat sends a seller message to the admin team.
func (s *storefrontService) SendChat(ctx context.Context, storeID uuid.UUID, message string) (*entity.ChatMessage, error) {
	chatMessage := &entity.ChatMessage{
		ID:         uuid.New(),
		StoreID:    storeID,
		SenderType: constants.SenderSeller,
		Message:    message,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := s.chatRepo.Create(ctx, chatMessage); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := &service.StoreEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			EventType:  service.EventChatMessage,
			StoreID:    storeID.String(),
			OccurredAt: chatMessage.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishStoreEvent(ctx, event); err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
			logger.Warn("Failed to publish chat event",
				slog.String("store_id", storeID.String()),
				slog.Any("error", err),
			)
		}
	}

	return chatMessage, nil
}
