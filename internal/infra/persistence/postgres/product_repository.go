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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByStore retrieves all products of a store, newest first.
func (repo *productRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		StoreID:     data.StoreID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		Category:    data.Category,
		InStock:     data.InStock,
		CreatedAt:   data.CreatedAt,
	}
}
