package gamification

import (
	"math"
	"time"

	vo "workdesk/internal/domain/workorder/valueobjects"
)

const (
	onTimeBonus = 1.5
	lateFactor  = 1.0
)

// ScoreInput carries everything the formula needs for one resolved order.
type ScoreInput struct {
	BasePoints         int
	CategoryMultiplier float64
	Difficulty         int
	Priority           vo.Priority
	DueDate            *time.Time
	ResolvedAt         time.Time
}

// CalculatePoints computes the score for a resolved work order:
//
//	floor(base * categoryMultiplier * difficulty * timeBonus * priorityMultiplier)
//
// The time bonus applies only when a due date was set and the order resolved
// at or before it. The result is never negative.
func CalculatePoints(in ScoreInput) int {
	timeBonus := lateFactor
	if in.DueDate != nil && !in.ResolvedAt.After(*in.DueDate) {
		timeBonus = onTimeBonus
	}

	raw := float64(in.BasePoints) *
		in.CategoryMultiplier *
		float64(in.Difficulty) *
		timeBonus *
		in.Priority.PointsMultiplier()

	points := int(math.Floor(raw))
	if points < 0 {
		return 0
	}
	return points
}

// DistributeShare splits the order's points evenly across its assignees.
// Each assignee receives floor(points/assignees); the remainder is dropped.
func DistributeShare(points, assigneeCount int) int {
	if assigneeCount <= 0 || points <= 0 {
		return 0
	}
	return points / assigneeCount
}
