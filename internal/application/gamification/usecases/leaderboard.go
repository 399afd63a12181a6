package usecases

import (
	"context"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

const maxLeaderboardSize = 100

type LeaderboardQuery struct {
	Limit int
}

type LeaderboardEntry struct {
	Rank               int
	UserID             uint
	TotalPoints        int
	Level              int
	ResolvedCount      int
	AvgResolutionHours float64
	Badges             []string
}

type LeaderboardResult struct {
	Entries []LeaderboardEntry
}

type LeaderboardUseCase struct {
	profileRepo gamification.ProfileRepository
	logger      logger.Interface
}

func NewLeaderboardUseCase(profileRepo gamification.ProfileRepository, logger logger.Interface) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *LeaderboardUseCase) Execute(ctx context.Context, query LeaderboardQuery) (*LeaderboardResult, error) {
	if query.Limit < 0 {
		return nil, errors.NewValidationError("limit cannot be negative")
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	if query.Limit > maxLeaderboardSize {
		query.Limit = maxLeaderboardSize
	}

	profiles, err := uc.profileRepo.ListTop(ctx, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to load leaderboard", "error", err)
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, LeaderboardEntry{
			Rank:               i + 1,
			UserID:             p.UserID(),
			TotalPoints:        p.TotalPoints(),
			Level:              p.Level(),
			ResolvedCount:      p.ResolvedCount(),
			AvgResolutionHours: p.AvgResolutionHours(),
			Badges:             p.Badges(),
		})
	}

	return &LeaderboardResult{Entries: entries}, nil
}
