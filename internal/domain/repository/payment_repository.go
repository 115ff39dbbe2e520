package repository

import (
	"context"
	"errors"
	"time"

	"isoko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByStores retrieves all payments of the given stores in a single
	// query, ordered by due date descending.
	FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Payment, error)

	// FindDue retrieves unpaid payments due on or before the given time,
	// joined with the contact details of their stores.
	FindDue(ctx context.Context, asOf time.Time) ([]*entity.DuePayment, error)

	// MarkPaid marks a payment as settled at the given time.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
}
