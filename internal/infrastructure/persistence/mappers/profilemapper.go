package mappers

import (
	"encoding/json"
	"fmt"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/infrastructure/persistence/models"
)

// ProfileMapper handles the conversion between score profile domain entities and persistence models.
type ProfileMapper interface {
	ToModel(p *gamification.Profile) *models.ScoreProfileModel
	ToDomain(model *models.ScoreProfileModel) (*gamification.Profile, error)
}

// ProfileMapperImpl is the concrete implementation of ProfileMapper.
type ProfileMapperImpl struct{}

// NewProfileMapper creates a new ProfileMapper.
func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *gamification.Profile) *models.ScoreProfileModel {
	model := &models.ScoreProfileModel{
		ID:                 p.ID(),
		UserID:             p.UserID(),
		TotalPoints:        p.TotalPoints(),
		Level:              p.Level(),
		ResolvedCount:      p.ResolvedCount(),
		AvgResolutionHours: p.AvgResolutionHours(),
		CreatedAt:          p.CreatedAt().UnixMilli(),
		UpdatedAt:          p.UpdatedAt().UnixMilli(),
	}

	if len(p.Badges()) > 0 {
		badgesJSON, _ := json.Marshal(p.Badges())
		model.Badges = string(badgesJSON)
	}

	return model
}

func (m *ProfileMapperImpl) ToDomain(model *models.ScoreProfileModel) (*gamification.Profile, error) {
	var badges []string
	if model.Badges != "" {
		if err := json.Unmarshal([]byte(model.Badges), &badges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile badges (id=%d): %w", model.ID, err)
		}
	}

	return gamification.ReconstructProfile(
		model.ID,
		model.UserID,
		model.TotalPoints,
		model.Level,
		model.ResolvedCount,
		model.AvgResolutionHours,
		badges,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
