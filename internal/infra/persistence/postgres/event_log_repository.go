package postgres

import (
	"context"

	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventLogRepository implements the repository.EventLogRepository interface.
type eventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository is the constructor for eventLogRepository.
func NewEventLogRepository(db *gorm.DB) repository.EventLogRepository {
	return &eventLogRepository{
		db: db,
	}
}

// Create appends a received event to the audit log.
func (repo *eventLogRepository) Create(ctx context.Context, log *entity.EventLog) error {
	logM := &model.EventLogModel{
		ID:         log.ID,
		EventType:  log.EventType,
		StoreID:    log.StoreID,
		Payload:    datatypes.JSON(log.Payload),
		ReceivedAt: log.ReceivedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event log entry")
	}

	// Update the entity with generated values
	log.ID = logM.ID

	return nil
}
