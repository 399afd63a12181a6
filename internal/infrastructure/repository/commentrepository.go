package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workdesk/internal/domain/workorder"
	"workdesk/internal/infrastructure/persistence/mappers"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewCommentRepository(gormDB *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gormDB,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *workorder.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) FindByWorkOrderID(ctx context.Context, workOrderID uint) ([]*workorder.Comment, error) {
	var commentModels []models.WorkOrderCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*workorder.Comment, len(commentModels))
	for i := range commentModels {
		comment, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = comment
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.WorkOrderCommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}
