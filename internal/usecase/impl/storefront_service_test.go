package impl

import (
	"context"
	"testing"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	mockRepo "isoko/internal/mocks/repository"
	mockSvc "isoko/internal/mocks/service"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storefrontServiceFixtures holds all test dependencies for storefront service tests.
type storefrontServiceFixtures struct {
	service      usecase.StorefrontUsecase
	storeRepo    *mockRepo.MockStoreRepository
	productRepo  *mockRepo.MockProductRepository
	followerRepo *mockRepo.MockStoreFollowerRepository
	chatRepo     *mockRepo.MockChatRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestStorefrontService(t *testing.T) storefrontServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	followerRepo := mockRepo.NewMockStoreFollowerRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewStorefrontService(
		newDiscardLogger(),
		storeRepo,
		productRepo,
		followerRepo,
		chatRepo,
		publisher,
	)

	return storefrontServiceFixtures{
		service:      svc,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		followerRepo: followerRepo,
		chatRepo:     chatRepo,
		publisher:    publisher,
	}
}

func TestStorefrontService_ListStores_AttachesFollowerCounts(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeA := &entity.Store{ID: uuid.New(), Name: "Kigali Crafts", IsActive: true, IsVisible: true}
	storeB := &entity.Store{ID: uuid.New(), Name: "Nyamirambo Textiles", IsActive: true, IsVisible: true}

	fx.storeRepo.EXPECT().
		FindPublic(ctx).
		Return([]*entity.Store{storeA, storeB}, nil)

	fx.followerRepo.EXPECT().
		FindByStores(ctx, []uuid.UUID{storeA.ID, storeB.ID}).
		Return([]*entity.StoreFollower{
			{ID: uuid.New(), StoreID: storeA.ID},
			{ID: uuid.New(), StoreID: storeA.ID},
		}, nil)

	stores, err := fx.service.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, storeA, stores[0].Store)
	assert.Equal(t, 2, stores[0].FollowersCount)
	assert.Zero(t, stores[1].FollowersCount)
}

func TestStorefrontService_GetStore_WithProducts(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeID := uuid.New()
	store := &entity.Store{ID: storeID, Name: "Kigali Crafts"}
	products := []*entity.Product{
		{ID: uuid.New(), StoreID: storeID, Name: "Basket", Price: decimal.NewFromInt(4500)},
	}

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(store, nil)

	fx.productRepo.EXPECT().
		FindByStore(ctx, storeID).
		Return(products, nil)

	detail, err := fx.service.GetStore(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, store, detail.Store)
	assert.Equal(t, products, detail.Products)
}

func TestStorefrontService_GetStore_NotFound(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	detail, err := fx.service.GetStore(ctx, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.Nil(t, detail)
}

func TestStorefrontService_FollowStore(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	fx.followerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StoreFollower")).
		Return(nil)

	follower, err := fx.service.FollowStore(ctx, storeID, "Aline", "+250780000002")
	require.NoError(t, err)
	assert.Equal(t, storeID, follower.StoreID)
	assert.Equal(t, "Aline", follower.Name)
	assert.Equal(t, "+250780000002", follower.Phone)
}

func TestStorefrontService_FollowStore_StoreNotFound(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	follower, err := fx.service.FollowStore(ctx, storeID, "Aline", "+250780000002")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.Nil(t, follower)
}

func TestStorefrontService_SendChat_SetsSellerSender(t *testing.T) {
	fx := createTestStorefrontService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.chatRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	message, err := fx.service.SendChat(ctx, storeID, "is my listing live yet?")
	require.NoError(t, err)
	assert.Equal(t, "seller", message.SenderType)
	assert.False(t, message.IsRead)
}
