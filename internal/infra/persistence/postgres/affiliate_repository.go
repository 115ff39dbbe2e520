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

// affiliateRepository implements the repository.AffiliateRepository interface.
type affiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository is the constructor for affiliateRepository.
func NewAffiliateRepository(db *gorm.DB) repository.AffiliateRepository {
	return &affiliateRepository{
		db: db,
	}
}

// Create persists a new affiliate.
func (repo *affiliateRepository) Create(ctx context.Context, affiliate *entity.Affiliate) error {
	affiliateM := fromAffiliateDomain(affiliate)

	if err := repo.db.WithContext(ctx).Create(affiliateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required affiliate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliate")
	}

	// Update the entity with generated values
	affiliate.ID = affiliateM.ID
	affiliate.CreatedAt = affiliateM.CreatedAt

	return nil
}

// FindAll retrieves every affiliate, newest first.
func (repo *affiliateRepository) FindAll(ctx context.Context) ([]*entity.Affiliate, error) {
	var affiliateModels []*model.AffiliateModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&affiliateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find affiliates")
	}

	affiliates := make([]*entity.Affiliate, 0, len(affiliateModels))
	for _, affiliateM := range affiliateModels {
		affiliates = append(affiliates, toAffiliateDomain(affiliateM))
	}

	return affiliates, nil
}

// FindByID retrieves an affiliate by its unique ID.
func (repo *affiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by ID")
	}

	return toAffiliateDomain(&affiliateM), nil
}

// affiliateEarningRepository implements the repository.AffiliateEarningRepository interface.
type affiliateEarningRepository struct {
	db *gorm.DB
}

// NewAffiliateEarningRepository is the constructor for affiliateEarningRepository.
func NewAffiliateEarningRepository(db *gorm.DB) repository.AffiliateEarningRepository {
	return &affiliateEarningRepository{
		db: db,
	}
}

// Create persists a new earning.
func (repo *affiliateEarningRepository) Create(ctx context.Context, earning *entity.AffiliateEarning) error {
	earningM := fromAffiliateEarningDomain(earning)

	if err := repo.db.WithContext(ctx).Create(earningM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAffiliateNotFound.WrapMessage("invalid affiliate, store, or payment reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required earning information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliate earning")
	}

	// Update the entity with generated values
	earning.ID = earningM.ID
	earning.CreatedAt = earningM.CreatedAt

	return nil
}

// FindByAffiliates retrieves all earnings of the given affiliates in a single
// query, newest first.
func (repo *affiliateEarningRepository) FindByAffiliates(ctx context.Context, affiliateIDs []uuid.UUID) ([]*entity.AffiliateEarning, error) {
	if len(affiliateIDs) == 0 {
		return []*entity.AffiliateEarning{}, nil
	}

	var earningModels []*model.AffiliateEarningModel

	if err := repo.db.WithContext(ctx).
		Where("affiliate_id IN ?", affiliateIDs).
		Order("created_at DESC").
		Find(&earningModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find earnings by affiliates")
	}

	earnings := make([]*entity.AffiliateEarning, 0, len(earningModels))
	for _, earningM := range earningModels {
		earnings = append(earnings, toAffiliateEarningDomain(earningM))
	}

	return earnings, nil
}

// SettleUnpaid marks every unpaid earning of an affiliate as paid at the
// given time. Zero affected rows is not an error.
func (repo *affiliateEarningRepository) SettleUnpaid(ctx context.Context, affiliateID uuid.UUID, paidAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AffiliateEarningModel{}).
		Where("affiliate_id = ? AND is_paid = ?", affiliateID, false).
		Updates(map[string]interface{}{
			"is_paid": true,
			"paid_at": paidAt,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to settle affiliate earnings")
	}

	return nil
}

// --- Mapper Functions ---

// toAffiliateDomain converts a GORM AffiliateModel to a domain Affiliate entity.
func toAffiliateDomain(data *model.AffiliateModel) *entity.Affiliate {
	if data == nil {
		return nil
	}

	return &entity.Affiliate{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		PromoCode: data.PromoCode,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

// fromAffiliateDomain converts a domain Affiliate entity to a GORM AffiliateModel.
func fromAffiliateDomain(data *entity.Affiliate) *model.AffiliateModel {
	if data == nil {
		return nil
	}

	return &model.AffiliateModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		PromoCode: data.PromoCode,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

// toAffiliateEarningDomain converts a GORM AffiliateEarningModel to a domain AffiliateEarning entity.
func toAffiliateEarningDomain(data *model.AffiliateEarningModel) *entity.AffiliateEarning {
	if data == nil {
		return nil
	}

	return &entity.AffiliateEarning{
		ID:          data.ID,
		AffiliateID: data.AffiliateID,
		StoreID:     data.StoreID,
		PaymentID:   data.PaymentID,
		Amount:      data.Amount,
		IsPaid:      data.IsPaid,
		PaidAt:      data.PaidAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromAffiliateEarningDomain converts a domain AffiliateEarning entity to a GORM AffiliateEarningModel.
func fromAffiliateEarningDomain(data *entity.AffiliateEarning) *model.AffiliateEarningModel {
	if data == nil {
		return nil
	}

	return &model.AffiliateEarningModel{
		ID:          data.ID,
		AffiliateID: data.AffiliateID,
		StoreID:     data.StoreID,
		PaymentID:   data.PaymentID,
		Amount:      data.Amount,
		IsPaid:      data.IsPaid,
		PaidAt:      data.PaidAt,
		CreatedAt:   data.CreatedAt,
	}
}
