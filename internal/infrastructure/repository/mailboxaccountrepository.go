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

type MailboxAccountRepository struct {
	db     *gorm.DB
	mapper mappers.MailroomMapper
}

func NewMailboxAccountRepository(gormDB *gorm.DB) *MailboxAccountRepository {
	return &MailboxAccountRepository{
		db:     gormDB,
		mapper: mappers.NewMailroomMapper(),
	}
}

func (r *MailboxAccountRepository) Create(ctx context.Context, account *mailroom.Account) error {
	model := r.mapper.AccountToModel(account)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("mailbox account name already exists")
		}
		return fmt.Errorf("failed to create mailbox account: %w", err)
	}

	return account.SetID(model.ID)
}

func (r *MailboxAccountRepository) FindByID(ctx context.Context, id uint) (*mailroom.Account, error) {
	var model models.MailboxAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("mailbox account not found")
		}
		return nil, fmt.Errorf("failed to find mailbox account: %w", err)
	}

	return r.mapper.AccountToDomain(&model)
}

func (r *MailboxAccountRepository) FindByName(ctx context.Context, name string) (*mailroom.Account, error) {
	var model models.MailboxAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("mailbox account not found")
		}
		return nil, fmt.Errorf("failed to find mailbox account: %w", err)
	}

	return r.mapper.AccountToDomain(&model)
}

func (r *MailboxAccountRepository) ListActive(ctx context.Context) ([]*mailroom.Account, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var accountModels []models.MailboxAccountModel
	if err := tx.
		Where("active = ?", true).
		Order("id ASC").
		Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mailbox accounts: %w", err)
	}

	return r.toDomainList(accountModels)
}

func (r *MailboxAccountRepository) List(ctx context.Context) ([]*mailroom.Account, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var accountModels []models.MailboxAccountModel
	if err := tx.Order("id ASC").Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mailbox accounts: %w", err)
	}

	return r.toDomainList(accountModels)
}

func (r *MailboxAccountRepository) Update(ctx context.Context, account *mailroom.Account) error {
	model := r.mapper.AccountToModel(account)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MailboxAccountModel{}).
		Where("id = ?", model.ID).
		Select(
			"name", "protocol", "host", "port", "username", "password",
			"use_tls", "folder", "active", "default_task_type_id",
			"default_category_id", "default_priority", "reply_template_id",
			"last_run_at", "processed_count", "updated_at",
		).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update mailbox account: %w", result.Error)
	}
	return nil
}

func (r *MailboxAccountRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MailboxAccountModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete mailbox account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("mailbox account not found")
	}
	return nil
}

func (r *MailboxAccountRepository) toDomainList(accountModels []models.MailboxAccountModel) ([]*mailroom.Account, error) {
	accounts := make([]*mailroom.Account, len(accountModels))
	for i := range accountModels {
		account, err := r.mapper.AccountToDomain(&accountModels[i])
		if err != nil {
			return nil, err
		}
		accounts[i] = account
	}
	return accounts, nil
}
