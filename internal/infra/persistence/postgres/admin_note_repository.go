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

// adminNoteRepository implements the repository.AdminNoteRepository interface.
type adminNoteRepository struct {
	db *gorm.DB
}

// NewAdminNoteRepository is the constructor for adminNoteRepository.
func NewAdminNoteRepository(db *gorm.DB) repository.AdminNoteRepository {
	return &adminNoteRepository{
		db: db,
	}
}

// Create persists a new note.
func (repo *adminNoteRepository) Create(ctx context.Context, note *entity.AdminNote) error {
	noteM := fromAdminNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required note information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	// Update the entity with generated values
	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

// Delete removes a note by its unique ID.
func (repo *adminNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdminNoteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// FindByStores retrieves all notes of the given stores in a single query,
// newest first.
func (repo *adminNoteRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.AdminNote, error) {
	if len(storeIDs) == 0 {
		return []*entity.AdminNote{}, nil
	}

	var noteModels []*model.AdminNoteModel

	if err := repo.db.WithContext(ctx).
		Where("store_id IN ?", storeIDs).
		Order("created_at DESC").
		Find(&noteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notes by stores")
	}

	notes := make([]*entity.AdminNote, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toAdminNoteDomain(noteM))
	}

	return notes, nil
}

// --- Mapper Functions ---

// toAdminNoteDomain converts a GORM AdminNoteModel to a domain AdminNote entity.
func toAdminNoteDomain(data *model.AdminNoteModel) *entity.AdminNote {
	if data == nil {
		return nil
	}

	return &entity.AdminNote{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}

// fromAdminNoteDomain converts a domain AdminNote entity to a GORM AdminNoteModel.
func fromAdminNoteDomain(data *entity.AdminNote) *model.AdminNoteModel {
	if data == nil {
		return nil
	}

	return &model.AdminNoteModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}
