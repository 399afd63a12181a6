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

type TaskCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewTaskCategoryRepository(gormDB *gorm.DB) *TaskCategoryRepository {
	return &TaskCategoryRepository{
		db:     gormDB,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *TaskCategoryRepository) Create(ctx context.Context, category *catalog.TaskCategory) error {
	model := r.mapper.CategoryToModel(category)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task category: %w", err)
	}

	return category.SetID(model.ID)
}

func (r *TaskCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
	var model models.TaskCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("task category not found")
		}
		return nil, fmt.Errorf("failed to find task category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *TaskCategoryRepository) List(ctx context.Context) ([]*catalog.TaskCategory, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.TaskCategoryModel
	if err := tx.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list task categories: %w", err)
	}

	return r.toDomainList(categoryModels)
}

func (r *TaskCategoryRepository) Update(ctx context.Context, category *catalog.TaskCategory) error {
	model := r.mapper.CategoryToModel(category)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TaskCategoryModel{}).
		Where("id = ?", model.ID).
		Select("name", "color", "multiplier", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task category: %w", result.Error)
	}
	return nil
}

func (r *TaskCategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TaskCategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("task category not found")
	}
	return nil
}

func (r *TaskCategoryRepository) toDomainList(categoryModels []models.TaskCategoryModel) ([]*catalog.TaskCategory, error) {
	categories := make([]*catalog.TaskCategory, len(categoryModels))
	for i := range categoryModels {
		category, err := r.mapper.CategoryToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[i] = category
	}
	return categories, nil
}
