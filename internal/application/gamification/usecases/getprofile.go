package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type ProfileDTO struct {
	UserID             uint
	TotalPoints        int
	Level              int
	ResolvedCount      int
	AvgResolutionHours float64
	Badges             []string
	UpdatedAt          time.Time
}

type GetProfileUseCase struct {
	profileRepo gamification.ProfileRepository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo gamification.ProfileRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute returns the profile with badges recomputed from the current
// counters. A user who has never been credited gets an empty level 1 view
// instead of a not found error.
func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	profile, err := uc.profileRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &ProfileDTO{
				UserID: query.UserID,
				Level:  1,
				Badges: []string{},
			}, nil
		}
		uc.logger.Errorw("failed to load profile", "user_id", query.UserID, "error", err)
		return nil, err
	}

	profile.RefreshBadges()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to persist refreshed badges", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return toProfileDTO(profile), nil
}

func toProfileDTO(profile *gamification.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID:             profile.UserID(),
		TotalPoints:        profile.TotalPoints(),
		Level:              profile.Level(),
		ResolvedCount:      profile.ResolvedCount(),
		AvgResolutionHours: profile.AvgResolutionHours(),
		Badges:             profile.Badges(),
		UpdatedAt:          profile.UpdatedAt(),
	}
}
