package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/shared/errors"
)

func TestGetProfileUseCase_Execute_RefreshesBadges(t *testing.T) {
	profile, err := gamification.ReconstructProfile(
		1, 7, 5200, 6, 12, 1.5, []string{},
		time.Now().Add(-time.Hour), time.Now(),
	)
	require.NoError(t, err)

	var persisted *gamification.Profile
	profileRepo := &mockProfileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*gamification.Profile, error) {
			return profile, nil
		},
		UpdateFunc: func(ctx context.Context, p *gamification.Profile) error {
			persisted = p
			return nil
		},
	}

	uc := NewGetProfileUseCase(profileRepo, &mockLogger{})

	dto, err := uc.Execute(context.Background(), GetProfileQuery{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, uint(7), dto.UserID)
	assert.Equal(t, 5200, dto.TotalPoints)
	assert.Contains(t, dto.Badges, gamification.BadgeBronzeSupporter)
	assert.Contains(t, dto.Badges, gamification.BadgeSilverSupporter)
	assert.Contains(t, dto.Badges, gamification.BadgeProblemSolver)
	assert.Contains(t, dto.Badges, gamification.BadgeSpeedDemon)
	require.NotNil(t, persisted)
}

func TestGetProfileUseCase_Execute_MissingProfileReturnsEmptyView(t *testing.T) {
	profileRepo := &mockProfileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*gamification.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
	}

	uc := NewGetProfileUseCase(profileRepo, &mockLogger{})

	dto, err := uc.Execute(context.Background(), GetProfileQuery{UserID: 99})
	require.NoError(t, err)

	assert.Equal(t, uint(99), dto.UserID)
	assert.Equal(t, 1, dto.Level)
	assert.Zero(t, dto.TotalPoints)
	assert.Empty(t, dto.Badges)
}

func TestGetProfileUseCase_Execute_RequiresUserID(t *testing.T) {
	uc := NewGetProfileUseCase(&mockProfileRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetProfileQuery{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLeaderboardUseCase_Execute(t *testing.T) {
	p1, err := gamification.ReconstructProfile(1, 3, 2000, 3, 5, 2.0, []string{}, time.Now(), time.Now())
	require.NoError(t, err)
	p2, err := gamification.ReconstructProfile(2, 5, 1500, 2, 4, 3.0, []string{}, time.Now(), time.Now())
	require.NoError(t, err)

	profileRepo := &mockProfileRepository{
		ListTopFunc: func(ctx context.Context, limit int) ([]*gamification.Profile, error) {
			assert.Equal(t, 10, limit)
			return []*gamification.Profile{p1, p2}, nil
		},
	}

	uc := NewLeaderboardUseCase(profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), LeaderboardQuery{})
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, 1, result.Entries[0].Rank)
	assert.Equal(t, uint(3), result.Entries[0].UserID)
	assert.Equal(t, 2, result.Entries[1].Rank)
	assert.Equal(t, uint(5), result.Entries[1].UserID)
}
