package gamification

import (
	"fmt"
	"time"
)

const pointsPerLevel = 1000

// Profile tracks a user's accumulated score. The level and the rolling
// average resolution time are derived as points are added, never stored
// authoritatively anywhere else.
type Profile struct {
	id                 uint
	userID             uint
	totalPoints        int
	level              int
	resolvedCount      int
	avgResolutionHours float64
	badges             []string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewProfile(userID uint) (*Profile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Profile{
		userID:    userID,
		level:     1,
		badges:    []string{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(
	id, userID uint,
	totalPoints, level, resolvedCount int,
	avgResolutionHours float64,
	badges []string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	if badges == nil {
		badges = []string{}
	}
	if level < 1 {
		level = 1
	}

	return &Profile{
		id:                 id,
		userID:             userID,
		totalPoints:        totalPoints,
		level:              level,
		resolvedCount:      resolvedCount,
		avgResolutionHours: avgResolutionHours,
		badges:             badges,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (p *Profile) ID() uint                    { return p.id }
func (p *Profile) UserID() uint                { return p.userID }
func (p *Profile) TotalPoints() int            { return p.totalPoints }
func (p *Profile) Level() int                  { return p.level }
func (p *Profile) ResolvedCount() int          { return p.resolvedCount }
func (p *Profile) AvgResolutionHours() float64 { return p.avgResolutionHours }
func (p *Profile) CreatedAt() time.Time        { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time        { return p.updatedAt }

func (p *Profile) Badges() []string {
	badges := make([]string, len(p.badges))
	copy(badges, p.badges)
	return badges
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// AddResolution credits one resolved order: the user's point share and the
// time it took. The level and rolling average are recomputed in place.
func (p *Profile) AddResolution(pointsShare int, resolutionTime time.Duration) error {
	if pointsShare < 0 {
		return fmt.Errorf("points share cannot be negative")
	}
	if resolutionTime < 0 {
		return fmt.Errorf("resolution time cannot be negative")
	}

	p.totalPoints += pointsShare
	p.resolvedCount++

	hours := resolutionTime.Hours()
	n := float64(p.resolvedCount)
	p.avgResolutionHours = (p.avgResolutionHours*(n-1) + hours) / n

	p.level = levelForPoints(p.totalPoints)
	p.updatedAt = time.Now()
	return nil
}

// RefreshBadges replaces the badge set with whatever the current counters
// earn. Recomputing is idempotent.
func (p *Profile) RefreshBadges() {
	p.badges = EarnedBadges(p.totalPoints, p.resolvedCount, p.avgResolutionHours)
	p.updatedAt = time.Now()
}

// Reset zeroes every counter and drops all badges. Used by the admin
// recalculation tooling before replaying resolved orders.
func (p *Profile) Reset() {
	p.totalPoints = 0
	p.level = 1
	p.resolvedCount = 0
	p.avgResolutionHours = 0
	p.badges = []string{}
	p.updatedAt = time.Now()
}

func levelForPoints(totalPoints int) int {
	level := totalPoints/pointsPerLevel + 1
	if level < 1 {
		return 1
	}
	return level
}
