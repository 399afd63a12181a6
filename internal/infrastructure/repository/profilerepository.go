package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/infrastructure/persistence/mappers"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(gormDB *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     gormDB,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *gamification.Profile) error {
	model := r.mapper.ToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("profile already exists for user")
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return profile.SetID(model.ID)
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*gamification.Profile, error) {
	var model models.ScoreProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) Update(ctx context.Context, profile *gamification.Profile) error {
	model := r.mapper.ToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	// Explicit column list so zeroed counters survive a reset.
	result := tx.
		Model(&models.ScoreProfileModel{}).
		Where("id = ?", model.ID).
		Select("user_id", "total_points", "level", "resolved_count", "avg_resolution_hours", "badges", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	return nil
}

func (r *ProfileRepository) ListTop(ctx context.Context, limit int) ([]*gamification.Profile, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("total_points DESC, resolved_count DESC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var profileModels []models.ScoreProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list top profiles: %w", err)
	}

	return r.toDomainList(profileModels)
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]*gamification.Profile, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var profileModels []models.ScoreProfileModel
	if err := tx.Order("id ASC").Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return r.toDomainList(profileModels)
}

func (r *ProfileRepository) toDomainList(profileModels []models.ScoreProfileModel) ([]*gamification.Profile, error) {
	profiles := make([]*gamification.Profile, len(profileModels))
	for i := range profileModels {
		profile, err := r.mapper.ToDomain(&profileModels[i])
		if err != nil {
			return nil, err
		}
		profiles[i] = profile
	}
	return profiles, nil
}
