package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workdesk/internal/domain/mailroom"
	"workdesk/internal/infrastructure/persistence/mappers"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

type ProcessedMessageRepository struct {
	db     *gorm.DB
	mapper mappers.MailroomMapper
}

func NewProcessedMessageRepository(gormDB *gorm.DB) *ProcessedMessageRepository {
	return &ProcessedMessageRepository{
		db:     gormDB,
		mapper: mappers.NewMailroomMapper(),
	}
}

func (r *ProcessedMessageRepository) Create(ctx context.Context, message *mailroom.ProcessedMessage) error {
	model := r.mapper.ProcessedToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("message already processed for account")
		}
		return fmt.Errorf("failed to record processed message: %w", err)
	}

	return message.SetID(model.ID)
}

func (r *ProcessedMessageRepository) Exists(ctx context.Context, accountID uint, messageID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ProcessedMessageModel{}).
		Where("account_id = ? AND message_id = ?", accountID, messageID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check processed message: %w", err)
	}
	return count > 0, nil
}

func (r *ProcessedMessageRepository) FindByAccountID(
	ctx context.Context,
	accountID uint,
	offset, limit int,
) ([]*mailroom.ProcessedMessage, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("account_id = ?", accountID).
		Order("processed_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var messageModels []models.ProcessedMessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list processed messages: %w", err)
	}

	messages := make([]*mailroom.ProcessedMessage, len(messageModels))
	for i := range messageModels {
		message, err := r.mapper.ProcessedToDomain(&messageModels[i])
		if err != nil {
			return nil, err
		}
		messages[i] = message
	}
	return messages, nil
}

func (r *ProcessedMessageRepository) CountByAccountID(ctx context.Context, accountID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ProcessedMessageModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count processed messages: %w", err)
	}
	return count, nil
}
