package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/infrastructure/persistence/mappers"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

type TaskTypeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewTaskTypeRepository(gormDB *gorm.DB) *TaskTypeRepository {
	return &TaskTypeRepository{
		db:     gormDB,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *TaskTypeRepository) Create(ctx context.Context, taskType *catalog.TaskType) error {
	model := r.mapper.TaskTypeToModel(taskType)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("task type name already exists")
		}
		return fmt.Errorf("failed to create task type: %w", err)
	}

	return taskType.SetID(model.ID)
}

func (r *TaskTypeRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskType, error) {
	var model models.TaskTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("task type not found")
		}
		return nil, fmt.Errorf("failed to find task type: %w", err)
	}

	return r.mapper.TaskTypeToDomain(&model)
}

func (r *TaskTypeRepository) FindByName(ctx context.Context, name string) (*catalog.TaskType, error) {
	var model models.TaskTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("task type not found")
		}
		return nil, fmt.Errorf("failed to find task type: %w", err)
	}

	return r.mapper.TaskTypeToDomain(&model)
}

func (r *TaskTypeRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.TaskType, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var typeModels []models.TaskTypeModel
	if err := query.Find(&typeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list task types: %w", err)
	}

	taskTypes := make([]*catalog.TaskType, len(typeModels))
	for i := range typeModels {
		taskType, err := r.mapper.TaskTypeToDomain(&typeModels[i])
		if err != nil {
			return nil, err
		}
		taskTypes[i] = taskType
	}
	return taskTypes, nil
}

func (r *TaskTypeRepository) Update(ctx context.Context, taskType *catalog.TaskType) error {
	model := r.mapper.TaskTypeToModel(taskType)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TaskTypeModel{}).
		Where("id = ?", model.ID).
		Select("name", "base_points", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task type: %w", result.Error)
	}
	return nil
}

func (r *TaskTypeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TaskTypeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("task type not found")
	}
	return nil
}
