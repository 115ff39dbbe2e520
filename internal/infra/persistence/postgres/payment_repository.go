package postgres

import (
	"context"
	"time"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	// Update the entity with generated values
	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.StorePaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByStores retrieves all payments of the given stores in a single query,
// ordered by due date descending.
func (repo *paymentRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Payment, error) {
	if len(storeIDs) == 0 {
		return []*entity.Payment{}, nil
	}

	var paymentModels []*model.StorePaymentModel

	if err := repo.db.WithContext(ctx).
		Where("store_id IN ?", storeIDs).
		Order("due_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by stores")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// duePaymentRow is the scan target for the overdue payment join.
type duePaymentRow struct {
	model.StorePaymentModel
	StoreName  string
	StoreEmail string
	StorePhone string
}

// FindDue retrieves unpaid payments due on or before the given time, joined
// with the contact details of their stores.
func (repo *paymentRepository) FindDue(ctx context.Context, asOf time.Time) ([]*entity.DuePayment, error) {
	var rows []*duePaymentRow

	if err := repo.db.WithContext(ctx).
		Model(&model.StorePaymentModel{}).
		Select("store_payments.*, stores.name AS store_name, stores.email AS store_email, stores.phone AS store_phone").
		Joins("JOIN stores ON stores.id = store_payments.store_id").
		Where("store_payments.is_paid = ? AND store_payments.due_date <= ?", false, asOf).
		Order("store_payments.due_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due payments")
	}

	duePayments := make([]*entity.DuePayment, 0, len(rows))
	for _, row := range rows {
		duePayments = append(duePayments, &entity.DuePayment{
			Payment:    *toPaymentDomain(&row.StorePaymentModel),
			StoreName:  row.StoreName,
			StoreEmail: row.StoreEmail,
			StorePhone: row.StorePhone,
		})
	}

	return duePayments, nil
}

// MarkPaid marks a payment as settled at the given time.
func (repo *paymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StorePaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid": true,
			"paid_at": paidAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark payment paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM StorePaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.StorePaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Amount:    data.Amount,
		DueDate:   data.DueDate,
		IsPaid:    data.IsPaid,
		PaidAt:    data.PaidAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM StorePaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.StorePaymentModel {
	if data == nil {
		return nil
	}

	return &model.StorePaymentModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Amount:    data.Amount,
		DueDate:   data.DueDate,
		IsPaid:    data.IsPaid,
		PaidAt:    data.PaidAt,
		CreatedAt: data.CreatedAt,
	}
}
