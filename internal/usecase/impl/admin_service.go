// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"time"

	"isoko/config"
	deliverycontext "isoko/internal/delivery/context"
	"isoko/internal/domain/constants"
	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/domain/service"
	"isoko/internal/errors"
	"isoko/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type adminService struct {
	storeRepo    repository.StoreRepository
	paymentRepo  repository.PaymentRepository
	noteRepo     repository.AdminNoteRepository
	chatRepo     repository.ChatRepository
	followerRepo repository.StoreFollowerRepository
	affRepo      repository.AffiliateRepository
	earningRepo  repository.AffiliateEarningRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger

	monthlyFee     decimal.Decimal
	commissionRate decimal.Decimal
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	cfg *config.Config,
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.AdminNoteRepository,
	chatRepo repository.ChatRepository,
	followerRepo repository.StoreFollowerRepository,
	affRepo repository.AffiliateRepository,
	earningRepo repository.AffiliateEarningRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
) usecase.AdminUsecase {
	return &adminService{
		storeRepo:      storeRepo,
		paymentRepo:    paymentRepo,
		noteRepo:       noteRepo,
		chatRepo:       chatRepo,
		followerRepo:   followerRepo,
		affRepo:        affRepo,
		earningRepo:    earningRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
		monthlyFee:     decimal.NewFromInt(cfg.Billing.MonthlyFee),
		commissionRate: decimal.NewFromFloat(cfg.Billing.CommissionRate),
	}
}

// ListStores retrieves every store enriched with its latest payment, admin
// notes, and follower count. Each related table is fetched once for the
// whole store set and grouped in memory.
func (s *adminService) ListStores(ctx context.Context) ([]*usecase.StoreOverview, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	if len(stores) == 0 {
		return []*usecase.StoreOverview{}, nil
	}

	storeIDs := make([]uuid.UUID, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	payments, err := s.paymentRepo.FindByStores(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch payments for stores")
	}

	notes, err := s.noteRepo.FindByStores(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch notes for stores")
	}

	followers, err := s.followerRepo.FindByStores(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch followers for stores")
	}

	latestPayments := latestPaymentByStore(payments)
	groupedNotes := notesByStore(notes)
	followerCounts := followerCountByStore(followers)

	overviews := make([]*usecase.StoreOverview, 0, len(stores))
	for _, store := range stores {
		noteList := groupedNotes[store.ID]
		if noteList == nil {
			noteList = []*entity.AdminNote{}
		}

		overviews = append(overviews, &usecase.StoreOverview{
			Store:          store,
			LatestPayment:  latestPayments[store.ID],
			Notes:          noteList,
			FollowersCount: followerCounts[store.ID],
		})
	}

	return overviews, nil
}

// SetStoreActive toggles the subscription state of a store.
func (s *adminService) SetStoreActive(ctx context.Context, storeID uuid.UUID, isActive bool) error {
	if err := s.storeRepo.SetActive(ctx, storeID, isActive); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to set store active state")
	}

	s.publishEvent(ctx, &service.StoreEvent{
		EventType:  service.EventStoreModerated,
		StoreID:    storeID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return nil
}

// AddNote attaches a note to a store.
func (s *adminService) AddNote(ctx context.Context, storeID uuid.UUID, note string) (*entity.AdminNote, error) {
	adminNote := &entity.AdminNote{
		ID:        uuid.New(),
		StoreID:   storeID,
		Note:      note,
		CreatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(ctx, adminNote); err != nil {
		return nil, err
	}

	return adminNote, nil
}

// DeleteNote removes a note.
func (s *adminService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotFound
		}

		return errors.Wrap(err, "failed to delete note")
	}

	return nil
}

// CreatePaymentReminder raises a new monthly subscription charge against a
// store, due one calendar month from now.
func (s *adminService) CreatePaymentReminder(ctx context.Context, storeID uuid.UUID) (*entity.Payment, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store for reminder")
	}

	payment := &entity.Payment{
		ID:        uuid.New(),
		StoreID:   storeID,
		Amount:    s.monthlyFee,
		DueDate:   time.Now().AddDate(0, 1, 0),
		IsPaid:    false,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// SettlePayment marks a payment as paid. When the paying store was referred
// by an affiliate, the referral commission is credited inside the same
// database transaction so the two writes cannot diverge.
func (s *adminService) SettlePayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	var settled *entity.Payment

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		paymentRepo := txRepoFactory.NewPaymentRepository()

		payment, err := paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return domainerrors.ErrPaymentNotFound
			}

			return errors.Wrap(err, "failed to load payment")
		}

		if payment.IsPaid {
			return domainerrors.ErrPaymentAlreadySettled
		}

		paidAt := time.Now()
		if err := paymentRepo.MarkPaid(ctx, paymentID, paidAt); err != nil {
			return errors.Wrap(err, "failed to mark payment paid")
		}
		payment.IsPaid = true
		payment.PaidAt = &paidAt

		store, err := txRepoFactory.NewStoreRepository().FindByID(ctx, payment.StoreID)
		if err != nil {
			return errors.Wrap(err, "failed to load store for settlement")
		}

		if store.ReferredByAffiliateID != nil {
			earning := &entity.AffiliateEarning{
				ID:          uuid.New(),
				AffiliateID: *store.ReferredByAffiliateID,
				StoreID:     store.ID,
				PaymentID:   payment.ID,
				Amount:      payment.Amount.Mul(s.commissionRate),
				IsPaid:      false,
				CreatedAt:   paidAt,
			}
			if err := txRepoFactory.NewAffiliateEarningRepository().Create(ctx, earning); err != nil {
				return errors.Wrap(err, "failed to credit affiliate earning")
			}
		}

		settled = payment

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &service.StoreEvent{
		EventType:  service.EventPaymentSettled,
		StoreID:    settled.StoreID.String(),
		PaymentID:  settled.ID.String(),
		Amount:     settled.Amount.String(),
		OccurredAt: settled.PaidAt.UTC().Format(time.RFC3339),
	})

	return settled, nil
}

// ListDuePayments retrieves unpaid payments that have fallen due.
func (s *adminService) ListDuePayments(ctx context.Context) ([]*entity.DuePayment, error) {
	duePayments, err := s.paymentRepo.FindDue(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list due payments")
	}

	return duePayments, nil
}

// ListChat retrieves the conversation of a store, oldest first.
func (s *adminService) ListChat(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error) {
	messages, err := s.chatRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return messages, nil
}

// SendChat sends an admin message to a store.
func (s *adminService) SendChat(ctx context.Context, storeID uuid.UUID, message string) (*entity.ChatMessage, error) {
	chatMessage := &entity.ChatMessage{
		ID:         uuid.New(),
		StoreID:    storeID,
		SenderType: constants.SenderAdmin,
		Message:    message,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := s.chatRepo.Create(ctx, chatMessage); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &service.StoreEvent{
		EventType:  service.EventChatMessage,
		StoreID:    storeID.String(),
		OccurredAt: chatMessage.CreatedAt.UTC().Format(time.RFC3339),
	})

	return chatMessage, nil
}

// ListAllChats summarizes every store conversation with at least one message.
// All messages are fetched once, newest first; unread seller messages are
// fetched once; both are grouped in memory.
func (s *adminService) ListAllChats(ctx context.Context) ([]*usecase.ChatOverview, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores for chat overview")
	}

	messages, err := s.chatRepo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chat messages")
	}

	unread, err := s.chatRepo.FindUnreadSellerMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch unread seller messages")
	}

	lastMessages := latestMessageByStore(messages)
	unreadCounts := unreadCountByStore(unread)

	overviews := make([]*usecase.ChatOverview, 0, len(lastMessages))
	for _, store := range stores {
		lastMessage, ok := lastMessages[store.ID]
		if !ok {
			// Stores without any conversation are excluded from the inbox.
			continue
		}

		overviews = append(overviews, &usecase.ChatOverview{
			Store:       store,
			LastMessage: lastMessage,
			UnreadCount: unreadCounts[store.ID],
		})
	}

	return overviews, nil
}

// MarkChatRead marks all seller messages of a store as read.
func (s *adminService) MarkChatRead(ctx context.Context, storeID uuid.UUID) error {
	if err := s.chatRepo.MarkSellerMessagesRead(ctx, storeID); err != nil {
		return errors.Wrap(err, "failed to mark chat read")
	}

	return nil
}

// ListAffiliates retrieves every affiliate with total and unpaid commission
// sums, computed from a single earnings fetch.
func (s *adminService) ListAffiliates(ctx context.Context) ([]*usecase.AffiliateSummary, error) {
	affiliates, err := s.affRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list affiliates")
	}

	if len(affiliates) == 0 {
		return []*usecase.AffiliateSummary{}, nil
	}

	affiliateIDs := make([]uuid.UUID, 0, len(affiliates))
	for _, affiliate := range affiliates {
		affiliateIDs = append(affiliateIDs, affiliate.ID)
	}

	earnings, err := s.earningRepo.FindByAffiliates(ctx, affiliateIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch affiliate earnings")
	}

	totals, unpaid := earningTotalsByAffiliate(earnings)

	summaries := make([]*usecase.AffiliateSummary, 0, len(affiliates))
	for _, affiliate := range affiliates {
		summaries = append(summaries, &usecase.AffiliateSummary{
			Affiliate:      affiliate,
			TotalEarned:    totals[affiliate.ID],
			UnpaidEarnings: unpaid[affiliate.ID],
		})
	}

	return summaries, nil
}

// SettleAffiliate pays out every unpaid commission of an affiliate.
func (s *adminService) SettleAffiliate(ctx context.Context, affiliateID uuid.UUID) error {
	if _, err := s.affRepo.FindByID(ctx, affiliateID); err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return domainerrors.ErrAffiliateNotFound
		}

		return errors.Wrap(err, "failed to load affiliate")
	}

	if err := s.earningRepo.SettleUnpaid(ctx, affiliateID, time.Now()); err != nil {
		return errors.Wrap(err, "failed to settle affiliate earnings")
	}

	s.publishEvent(ctx, &service.StoreEvent{
		EventType:   service.EventAffiliateSettled,
		AffiliateID: affiliateID.String(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return nil
}

// publishEvent publishes a store event without affecting the outcome of the
// admin action. Failures are logged and dropped.
func (s *adminService) publishEvent(ctx context.Context, event *service.StoreEvent) {
	if s.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishStoreEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("Failed to publish store event",
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
		)
	}
}

// --- Grouping helpers ---
//
// Each helper reduces one pre-ordered related-table fetch into a per-store
// lookup structure. Inputs ordered newest first make the first row per key
// the winner.

// latestPaymentByStore keeps the first payment seen per store. Rows arrive
// ordered by due date descending, so the first is the latest.
func latestPaymentByStore(payments []*entity.Payment) map[uuid.UUID]*entity.Payment {
	latest := make(map[uuid.UUID]*entity.Payment, len(payments))
	for _, payment := range payments {
		if _, ok := latest[payment.StoreID]; !ok {
			latest[payment.StoreID] = payment
		}
	}

	return latest
}

// notesByStore appends notes per store, preserving the fetch order.
func notesByStore(notes []*entity.AdminNote) map[uuid.UUID][]*entity.AdminNote {
	grouped := make(map[uuid.UUID][]*entity.AdminNote)
	for _, note := range notes {
		grouped[note.StoreID] = append(grouped[note.StoreID], note)
	}

	return grouped
}

// followerCountByStore counts followers per store.
func followerCountByStore(followers []*entity.StoreFollower) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, follower := range followers {
		counts[follower.StoreID]++
	}

	return counts
}

// latestMessageByStore keeps the first message seen per store. Rows arrive
// newest first.
func latestMessageByStore(messages []*entity.ChatMessage) map[uuid.UUID]*entity.ChatMessage {
	latest := make(map[uuid.UUID]*entity.ChatMessage, len(messages))
	for _, message := range messages {
		if _, ok := latest[message.StoreID]; !ok {
			latest[message.StoreID] = message
		}
	}

	return latest
}

// unreadCountByStore counts unread seller messages per store.
func unreadCountByStore(messages []*entity.ChatMessage) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, message := range messages {
		counts[message.StoreID]++
	}

	return counts
}

// earningTotalsByAffiliate sums all and unpaid commission amounts per affiliate.
func earningTotalsByAffiliate(earnings []*entity.AffiliateEarning) (totals, unpaid map[uuid.UUID]decimal.Decimal) {
	totals = make(map[uuid.UUID]decimal.Decimal)
	unpaid = make(map[uuid.UUID]decimal.Decimal)
	for _, earning := range earnings {
		totals[earning.AffiliateID] = totals[earning.AffiliateID].Add(earning.Amount)
		if !earning.IsPaid {
			unpaid[earning.AffiliateID] = unpaid[earning.AffiliateID].Add(earning.Amount)
		}
	}

	return totals, unpaid
}
