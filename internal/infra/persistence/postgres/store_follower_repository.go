package postgres

import (
	"context"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeFollowerRepository implements the repository.StoreFollowerRepository interface.
type storeFollowerRepository struct {
	db *gorm.DB
}

// NewStoreFollowerRepository is the constructor for storeFollowerRepository.
func NewStoreFollowerRepository(db *gorm.DB) repository.StoreFollowerRepository {
	return &storeFollowerRepository{
		db: db,
	}
}

// Create persists a new follower.
func (repo *storeFollowerRepository) Create(ctx context.Context, follower *entity.StoreFollower) error {
	followerM := fromStoreFollowerDomain(follower)

	if err := repo.db.WithContext(ctx).Create(followerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required follower information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follower")
	}

	// Update the entity with generated values
	follower.ID = followerM.ID
	follower.CreatedAt = followerM.CreatedAt

	return nil
}

// FindByStores retrieves all followers of the given stores in a single query.
func (repo *storeFollowerRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.StoreFollower, error) {
	if len(storeIDs) == 0 {
		return []*entity.StoreFollower{}, nil
	}

	var followerModels []*model.StoreFollowerModel

	if err := repo.db.WithContext(ctx).
		Where("store_id IN ?", storeIDs).
		Find(&followerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followers by stores")
	}

	followers := make([]*entity.StoreFollower, 0, len(followerModels))
	for _, followerM := range followerModels {
		followers = append(followers, toStoreFollowerDomain(followerM))
	}

	return followers, nil
}

// --- Mapper Functions ---

// toStoreFollowerDomain converts a GORM StoreFollowerModel to a domain StoreFollower entity.
func toStoreFollowerDomain(data *model.StoreFollowerModel) *entity.StoreFollower {
	if data == nil {
		return nil
	}

	return &entity.StoreFollower{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
}

// fromStoreFollowerDomain converts a domain StoreFollower entity to a GORM StoreFollowerModel.
func fromStoreFollowerDomain(data *entity.StoreFollower) *model.StoreFollowerModel {
	if data == nil {
		return nil
	}

	return &model.StoreFollowerModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
}
