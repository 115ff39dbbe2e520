package impl

import (
	"context"
	"testing"
	"time"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/domain/service"
	mockRepo "isoko/internal/mocks/repository"
	mockSvc "isoko/internal/mocks/service"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	storeRepo    *mockRepo.MockStoreRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	noteRepo     *mockRepo.MockAdminNoteRepository
	chatRepo     *mockRepo.MockChatRepository
	followerRepo *mockRepo.MockStoreFollowerRepository
	affRepo      *mockRepo.MockAffiliateRepository
	earningRepo  *mockRepo.MockAffiliateEarningRepository
	txManager    *mockRepo.MockTransactionManager
	publisher    *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	noteRepo := mockRepo.NewMockAdminNoteRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	followerRepo := mockRepo.NewMockStoreFollowerRepository(t)
	affRepo := mockRepo.NewMockAffiliateRepository(t)
	earningRepo := mockRepo.NewMockAffiliateEarningRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAdminService(
		newTestConfig(),
		newDiscardLogger(),
		storeRepo,
		paymentRepo,
		noteRepo,
		chatRepo,
		followerRepo,
		affRepo,
		earningRepo,
		txManager,
		publisher,
	)

	return adminServiceFixtures{
		service:      svc,
		storeRepo:    storeRepo,
		paymentRepo:  paymentRepo,
		noteRepo:     noteRepo,
		chatRepo:     chatRepo,
		followerRepo: followerRepo,
		affRepo:      affRepo,
		earningRepo:  earningRepo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

func TestAdminService_ListStores_GroupsRelatedData(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeA := &entity.Store{ID: uuid.New(), Name: "Kigali Crafts"}
	storeB := &entity.Store{ID: uuid.New(), Name: "Nyamirambo Textiles"}
	storeIDs := []uuid.UUID{storeA.ID, storeB.ID}

	latestPayment := &entity.Payment{
		ID:      uuid.New(),
		StoreID: storeA.ID,
		Amount:  decimal.NewFromInt(8000),
		DueDate: time.Now().AddDate(0, 1, 0),
	}
	olderPayment := &entity.Payment{
		ID:      uuid.New(),
		StoreID: storeA.ID,
		Amount:  decimal.NewFromInt(8000),
		DueDate: time.Now(),
	}

	noteOne := &entity.AdminNote{ID: uuid.New(), StoreID: storeA.ID, Note: "called owner"}
	noteTwo := &entity.AdminNote{ID: uuid.New(), StoreID: storeA.ID, Note: "payment promised"}

	fx.storeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Store{storeA, storeB}, nil)

	// Payments arrive ordered by due date descending.
	fx.paymentRepo.EXPECT().
		FindByStores(ctx, storeIDs).
		Return([]*entity.Payment{latestPayment, olderPayment}, nil)

	fx.noteRepo.EXPECT().
		FindByStores(ctx, storeIDs).
		Return([]*entity.AdminNote{noteOne, noteTwo}, nil)

	fx.followerRepo.EXPECT().
		FindByStores(ctx, storeIDs).
		Return([]*entity.StoreFollower{
			{ID: uuid.New(), StoreID: storeA.ID},
			{ID: uuid.New(), StoreID: storeA.ID},
			{ID: uuid.New(), StoreID: storeA.ID},
		}, nil)

	overviews, err := fx.service.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, overviews, 2)

	// Store order is preserved.
	assert.Equal(t, storeA, overviews[0].Store)
	assert.Equal(t, storeB, overviews[1].Store)

	// The payment with the latest due date wins.
	assert.Equal(t, latestPayment, overviews[0].LatestPayment)
	assert.Equal(t, []*entity.AdminNote{noteOne, noteTwo}, overviews[0].Notes)
	assert.Equal(t, 3, overviews[0].FollowersCount)

	// A store with no related rows gets identity defaults.
	assert.Nil(t, overviews[1].LatestPayment)
	assert.Empty(t, overviews[1].Notes)
	assert.Zero(t, overviews[1].FollowersCount)
}

func TestAdminService_ListStores_NoStores(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.storeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Store{}, nil)

	overviews, err := fx.service.ListStores(ctx)
	require.NoError(t, err)
	assert.Empty(t, overviews)
}

func TestAdminService_SetStoreActive_PublishesEvent(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		SetActive(ctx, storeID, false).
		Return(nil)

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Run(func(_ context.Context, event *service.StoreEvent) {
			assert.Equal(t, service.EventStoreModerated, event.EventType)
			assert.Equal(t, storeID.String(), event.StoreID)
		}).
		Return(nil)

	err := fx.service.SetStoreActive(ctx, storeID, false)
	require.NoError(t, err)
}

func TestAdminService_SetStoreActive_StoreNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		SetActive(ctx, storeID, true).
		Return(repository.ErrStoreNotFound)

	err := fx.service.SetStoreActive(ctx, storeID, true)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestAdminService_CreatePaymentReminder(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	payment, err := fx.service.CreatePaymentReminder(ctx, storeID)
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, storeID, payment.StoreID)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(8000)))
	assert.False(t, payment.IsPaid)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), payment.DueDate, time.Minute)
}

func TestAdminService_CreatePaymentReminder_StoreNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	payment, err := fx.service.CreatePaymentReminder(ctx, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.Nil(t, payment)
}

func TestAdminService_SettlePayment_CreditsAffiliateCommission(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	storeID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{
		ID:      paymentID,
		StoreID: storeID,
		Amount:  decimal.NewFromInt(8000),
		IsPaid:  false,
	}
	store := &entity.Store{
		ID:                    storeID,
		ReferredByAffiliateID: &affiliateID,
	}

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	txEarningRepo := mockRepo.NewMockAffiliateEarningRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)
	factory.EXPECT().NewStoreRepository().Return(txStoreRepo)
	factory.EXPECT().NewAffiliateEarningRepository().Return(txEarningRepo)

	txPaymentRepo.EXPECT().
		FindByID(ctx, paymentID).
		Return(payment, nil)
	txPaymentRepo.EXPECT().
		MarkPaid(ctx, paymentID, mock.AnythingOfType("time.Time")).
		Return(nil)
	txStoreRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(store, nil)
	txEarningRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AffiliateEarning")).
		Run(func(_ context.Context, earning *entity.AffiliateEarning) {
			assert.Equal(t, affiliateID, earning.AffiliateID)
			assert.Equal(t, storeID, earning.StoreID)
			assert.Equal(t, paymentID, earning.PaymentID)
			assert.True(t, earning.Amount.Equal(decimal.NewFromInt(2400)),
				"commission should be 30%% of 8000, got %s", earning.Amount)
			assert.False(t, earning.IsPaid)
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Run(func(_ context.Context, event *service.StoreEvent) {
			assert.Equal(t, service.EventPaymentSettled, event.EventType)
			assert.Equal(t, paymentID.String(), event.PaymentID)
		}).
		Return(nil)

	settled, err := fx.service.SettlePayment(ctx, paymentID)
	require.NoError(t, err)
	require.NotNil(t, settled)
	assert.True(t, settled.IsPaid)
	require.NotNil(t, settled.PaidAt)
}

func TestAdminService_SettlePayment_NoAffiliate_NoCommission(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{
		ID:      paymentID,
		StoreID: storeID,
		Amount:  decimal.NewFromInt(8000),
		IsPaid:  false,
	}

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)

	// The earning repository is never requested for an unreferred store.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)
	factory.EXPECT().NewStoreRepository().Return(txStoreRepo)

	txPaymentRepo.EXPECT().
		FindByID(ctx, paymentID).
		Return(payment, nil)
	txPaymentRepo.EXPECT().
		MarkPaid(ctx, paymentID, mock.AnythingOfType("time.Time")).
		Return(nil)
	txStoreRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	settled, err := fx.service.SettlePayment(ctx, paymentID)
	require.NoError(t, err)
	assert.True(t, settled.IsPaid)
}

func TestAdminService_SettlePayment_AlreadySettled(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	paymentID := uuid.New()
	paidAt := time.Now().Add(-time.Hour)

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	txPaymentRepo.EXPECT().
		FindByID(ctx, paymentID).
		Return(&entity.Payment{
			ID:     paymentID,
			IsPaid: true,
			PaidAt: &paidAt,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	settled, err := fx.service.SettlePayment(ctx, paymentID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadySettled)
	assert.Nil(t, settled)
}

func TestAdminService_SettlePayment_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	paymentID := uuid.New()

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	txPaymentRepo.EXPECT().
		FindByID(ctx, paymentID).
		Return(nil, repository.ErrPaymentNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	settled, err := fx.service.SettlePayment(ctx, paymentID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
	assert.Nil(t, settled)
}

func TestAdminService_ListDuePayments(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	due := []*entity.DuePayment{
		{
			Payment:    entity.Payment{ID: uuid.New(), Amount: decimal.NewFromInt(8000)},
			StoreName:  "Kigali Crafts",
			StoreEmail: "owner@kigalicrafts.rw",
			StorePhone: "+250780000001",
		},
	}

	fx.paymentRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time")).
		Return(due, nil)

	got, err := fx.service.ListDuePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, due, got)
}

func TestAdminService_ListAllChats_ExcludesStoresWithoutMessages(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeA := &entity.Store{ID: uuid.New(), Name: "Kigali Crafts"}
	storeB := &entity.Store{ID: uuid.New(), Name: "Silent Store"}

	newest := &entity.ChatMessage{ID: uuid.New(), StoreID: storeA.ID, Message: "any update?"}
	older := &entity.ChatMessage{ID: uuid.New(), StoreID: storeA.ID, Message: "hello"}

	fx.storeRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Store{storeA, storeB}, nil)

	// Messages arrive newest first.
	fx.chatRepo.EXPECT().
		FindAllNewestFirst(ctx).
		Return([]*entity.ChatMessage{newest, older}, nil)

	fx.chatRepo.EXPECT().
		FindUnreadSellerMessages(ctx).
		Return([]*entity.ChatMessage{newest}, nil)

	overviews, err := fx.service.ListAllChats(ctx)
	require.NoError(t, err)
	require.Len(t, overviews, 1)

	assert.Equal(t, storeA, overviews[0].Store)
	assert.Equal(t, newest, overviews[0].LastMessage)
	assert.Equal(t, 1, overviews[0].UnreadCount)
}

func TestAdminService_SendChat_SetsAdminSender(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.chatRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	message, err := fx.service.SendChat(ctx, storeID, "please settle your invoice")
	require.NoError(t, err)
	assert.Equal(t, "admin", message.SenderType)
	assert.Equal(t, storeID, message.StoreID)
	assert.False(t, message.IsRead)
}

func TestAdminService_MarkChatRead(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.chatRepo.EXPECT().
		MarkSellerMessagesRead(ctx, storeID).
		Return(nil)

	err := fx.service.MarkChatRead(ctx, storeID)
	require.NoError(t, err)
}

func TestAdminService_ListAffiliates_SumsEarnings(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	affiliate := &entity.Affiliate{ID: uuid.New(), Name: "Jean"}
	emptyAffiliate := &entity.Affiliate{ID: uuid.New(), Name: "Claudine"}

	fx.affRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Affiliate{affiliate, emptyAffiliate}, nil)

	fx.earningRepo.EXPECT().
		FindByAffiliates(ctx, []uuid.UUID{affiliate.ID, emptyAffiliate.ID}).
		Return([]*entity.AffiliateEarning{
			{AffiliateID: affiliate.ID, Amount: decimal.NewFromInt(2400), IsPaid: true},
			{AffiliateID: affiliate.ID, Amount: decimal.NewFromInt(2400), IsPaid: false},
		}, nil)

	summaries, err := fx.service.ListAffiliates(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.True(t, summaries[0].TotalEarned.Equal(decimal.NewFromInt(4800)))
	assert.True(t, summaries[0].UnpaidEarnings.Equal(decimal.NewFromInt(2400)))

	assert.True(t, summaries[1].TotalEarned.IsZero())
	assert.True(t, summaries[1].UnpaidEarnings.IsZero())
}

func TestAdminService_SettleAffiliate(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(&entity.Affiliate{ID: affiliateID}, nil)

	fx.earningRepo.EXPECT().
		SettleUnpaid(ctx, affiliateID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Run(func(_ context.Context, event *service.StoreEvent) {
			assert.Equal(t, service.EventAffiliateSettled, event.EventType)
			assert.Equal(t, affiliateID.String(), event.AffiliateID)
		}).
		Return(nil)

	err := fx.service.SettleAffiliate(ctx, affiliateID)
	require.NoError(t, err)
}

func TestAdminService_SettleAffiliate_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(nil, repository.ErrAffiliateNotFound)

	err := fx.service.SettleAffiliate(ctx, affiliateID)
	assert.ErrorIs(t, err, domainerrors.ErrAffiliateNotFound)
}

func TestAdminService_DeleteNote_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	noteID := uuid.New()

	fx.noteRepo.EXPECT().
		Delete(ctx, noteID).
		Return(repository.ErrNoteNotFound)

	err := fx.service.DeleteNote(ctx, noteID)
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}
