package postgres

import (
	"context"

	"isoko/internal/domain/constants"
	"isoko/internal/domain/entity"
	domainerrors "isoko/internal/domain/errors"
	"isoko/internal/domain/repository"
	"isoko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create persists a new chat message.
func (repo *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByStore retrieves the conversation of a store, oldest first.
func (repo *chatRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.AdminChatModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chat messages by store")
	}

	return toChatMessageDomains(messageModels), nil
}

// FindAllNewestFirst retrieves every chat message across all stores, newest first.
func (repo *chatRepository) FindAllNewestFirst(ctx context.Context) ([]*entity.ChatMessage, error) {
	var messageModels []*model.AdminChatModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all chat messages")
	}

	return toChatMessageDomains(messageModels), nil
}

// FindUnreadSellerMessages retrieves all unread messages sent by sellers.
func (repo *chatRepository) FindUnreadSellerMessages(ctx context.Context) ([]*entity.ChatMessage, error) {
	var messageModels []*model.AdminChatModel

	if err := repo.db.WithContext(ctx).
		Where("sender_type = ? AND is_read = ?", constants.SenderSeller, false).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unread seller messages")
	}

	return toChatMessageDomains(messageModels), nil
}

// MarkSellerMessagesRead marks every seller message of a store as read.
// Zero affected rows is not an error; the conversation may already be read.
func (repo *chatRepository) MarkSellerMessagesRead(ctx context.Context, storeID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AdminChatModel{}).
		Where("store_id = ? AND sender_type = ?", storeID, constants.SenderSeller).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark seller messages read")
	}

	return nil
}

// --- Mapper Functions ---

func toChatMessageDomains(data []*model.AdminChatModel) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, 0, len(data))
	for _, messageM := range data {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages
}

// toChatMessageDomain converts a GORM AdminChatModel to a domain ChatMessage entity.
func toChatMessageDomain(data *model.AdminChatModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:         data.ID,
		StoreID:    data.StoreID,
		SenderType: data.SenderType,
		Message:    data.Message,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}

// fromChatMessageDomain converts a domain ChatMessage entity to a GORM AdminChatModel.
func fromChatMessageDomain(data *entity.ChatMessage) *model.AdminChatModel {
	if data == nil {
		return nil
	}

	return &model.AdminChatModel{
		ID:         data.ID,
		StoreID:    data.StoreID,
		SenderType: data.SenderType,
		Message:    data.Message,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}
