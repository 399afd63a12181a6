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

type ReplyTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.MailroomMapper
}

func NewReplyTemplateRepository(gormDB *gorm.DB) *ReplyTemplateRepository {
	return &ReplyTemplateRepository{
		db:     gormDB,
		mapper: mappers.NewMailroomMapper(),
	}
}

func (r *ReplyTemplateRepository) Create(ctx context.Context, template *mailroom.ReplyTemplate) error {
	model := r.mapper.TemplateToModel(template)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("a reply template with this name or type already exists")
		}
		return fmt.Errorf("failed to create reply template: %w", err)
	}

	return template.SetID(model.ID)
}

func (r *ReplyTemplateRepository) FindByID(ctx context.Context, id uint) (*mailroom.ReplyTemplate, error) {
	var model models.ReplyTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("reply template not found")
		}
		return nil, fmt.Errorf("failed to find reply template: %w", err)
	}

	return r.mapper.TemplateToDomain(&model)
}

func (r *ReplyTemplateRepository) FindByType(ctx context.Context, templateType mailroom.TemplateType) (*mailroom.ReplyTemplate, error) {
	var model models.ReplyTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("template_type = ?", string(templateType)).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("reply template not found")
		}
		return nil, fmt.Errorf("failed to find reply template: %w", err)
	}

	return r.mapper.TemplateToDomain(&model)
}

func (r *ReplyTemplateRepository) List(ctx context.Context) ([]*mailroom.ReplyTemplate, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var templateModels []models.ReplyTemplateModel
	if err := tx.Order("name ASC").Find(&templateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reply templates: %w", err)
	}

	templates := make([]*mailroom.ReplyTemplate, len(templateModels))
	for i := range templateModels {
		template, err := r.mapper.TemplateToDomain(&templateModels[i])
		if err != nil {
			return nil, err
		}
		templates[i] = template
	}
	return templates, nil
}

func (r *ReplyTemplateRepository) Update(ctx context.Context, template *mailroom.ReplyTemplate) error {
	model := r.mapper.TemplateToModel(template)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReplyTemplateModel{}).
		Where("id = ?", model.ID).
		Select("name", "template_type", "subject", "body", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update reply template: %w", result.Error)
	}
	return nil
}

func (r *ReplyTemplateRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReplyTemplateModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("reply template not found")
	}
	return nil
}
