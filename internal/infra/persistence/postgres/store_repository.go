package postgres

import (
	"context"

	"isoko/internal/domain/entity"
	"isoko/internal/domain/repository"
	"isoko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindAll retrieves every store, newest first.
func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// FindPublic retrieves stores that are active and visible, newest first.
func (repo *storeRepository) FindPublic(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND is_visible = ?", true, true).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find public stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// SetActive toggles the subscription state of a store.
func (repo *storeRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store active state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:                    data.ID,
		Name:                  data.Name,
		Description:           data.Description,
		OwnerName:             data.OwnerName,
		Email:                 data.Email,
		Phone:                 data.Phone,
		WhatsApp:              data.WhatsApp,
		Category:              data.Category,
		IsActive:              data.IsActive,
		IsVisible:             data.IsVisible,
		ReferredByAffiliateID: data.ReferredByAffiliateID,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
