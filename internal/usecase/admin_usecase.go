// Package usecase defines the application use case interfaces and their DTOs.
package usecase

import (
	"context"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreOverview is a store enriched with its related admin data.
// LatestPayment is nil when the store has no payments, Notes is empty when
// it has none, FollowersCount is zero when nobody follows it.
type StoreOverview struct {
	Store          *entity.Store       `json:"store"`
	LatestPayment  *entity.Payment     `json:"latest_payment"`
	Notes          []*entity.AdminNote `json:"notes"`
	FollowersCount int                 `json:"followers_count"`
}

// ChatOverview summarizes the conversation of a single store for the
// admin inbox.
type ChatOverview struct {
	Store       *entity.Store       `json:"store"`
	LastMessage *entity.ChatMessage `json:"last_message"`
	UnreadCount int                 `json:"unread_count"`
}

// AffiliateSummary is an affiliate enriched with its commission totals.
type AffiliateSummary struct {
	Affiliate      *entity.Affiliate `json:"affiliate"`
	TotalEarned    decimal.Decimal   `json:"total_earned"`
	UnpaidEarnings decimal.Decimal   `json:"unpaid_earnings"`
}

// AdminUsecase defines the interface for the admin portal use cases.
type AdminUsecase interface {
	// ListStores retrieves every store enriched with its latest payment,
	// admin notes, and follower count.
	ListStores(ctx context.Context) ([]*StoreOverview, error)

	// SetStoreActive toggles the subscription state of a store.
	SetStoreActive(ctx context.Context, storeID uuid.UUID, isActive bool) error

	// AddNote attaches a note to a store.
	AddNote(ctx context.Context, storeID uuid.UUID, note string) (*entity.AdminNote, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID uuid.UUID) error

	// CreatePaymentReminder raises a new monthly subscription charge against
	// a store, due one calendar month from now.
	CreatePaymentReminder(ctx context.Context, storeID uuid.UUID) (*entity.Payment, error)

	// SettlePayment marks a payment as paid and, when the store was referred
	// by an affiliate, credits the referral commission in the same transaction.
	SettlePayment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error)

	// ListDuePayments retrieves unpaid payments that have fallen due,
	// with the contact details of their stores.
	ListDuePayments(ctx context.Context) ([]*entity.DuePayment, error)

	// ListChat retrieves the conversation of a store, oldest first.
	ListChat(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error)

	// SendChat sends an admin message to a store.
	SendChat(ctx context.Context, storeID uuid.UUID, message string) (*entity.ChatMessage, error)

	// ListAllChats summarizes every store conversation that has at least one
	// message: the newest message plus the count of unread seller messages.
	ListAllChats(ctx context.Context) ([]*ChatOverview, error)

	// MarkChatRead marks all seller messages of a store as read.
	MarkChatRead(ctx context.Context, storeID uuid.UUID) error

	// ListAffiliates retrieves every affiliate with total and unpaid
	// commission sums.
	ListAffiliates(ctx context.Context) ([]*AffiliateSummary, error)

	// SettleAffiliate pays out every unpaid commission of an affiliate.
	SettleAffiliate(ctx context.Context, affiliateID uuid.UUID) error
}
