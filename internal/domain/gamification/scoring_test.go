package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "workdesk/internal/domain/workorder/valueobjects"
)

func TestCalculatePoints(t *testing.T) {
	resolved := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	beforeDue := resolved.Add(2 * time.Hour)
	afterDue := resolved.Add(-2 * time.Hour)

	tests := []struct {
		name string
		in   ScoreInput
		want int
	}{
		{
			name: "no due date, low priority",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.2,
				Difficulty:         3,
				Priority:           vo.PriorityLow,
				ResolvedAt:         resolved,
			},
			want: 360,
		},
		{
			name: "resolved before due date earns time bonus",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.5,
				Difficulty:         3,
				Priority:           vo.PriorityLow,
				DueDate:            &beforeDue,
				ResolvedAt:         resolved,
			},
			want: 675,
		},
		{
			name: "resolved after due date, no bonus",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.5,
				Difficulty:         3,
				Priority:           vo.PriorityLow,
				DueDate:            &afterDue,
				ResolvedAt:         resolved,
			},
			want: 450,
		},
		{
			name: "resolved exactly at due date counts as on time",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.0,
				Difficulty:         1,
				Priority:           vo.PriorityLow,
				DueDate:            &resolved,
				ResolvedAt:         resolved,
			},
			want: 150,
		},
		{
			name: "urgent priority doubles",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.0,
				Difficulty:         2,
				Priority:           vo.PriorityUrgent,
				ResolvedAt:         resolved,
			},
			want: 400,
		},
		{
			name: "fractional result floors",
			in: ScoreInput{
				BasePoints:         10,
				CategoryMultiplier: 1.1,
				Difficulty:         1,
				Priority:           vo.PriorityMedium,
				ResolvedAt:         resolved,
			},
			want: 13,
		},
		{
			name: "unknown priority falls back to 1.0",
			in: ScoreInput{
				BasePoints:         100,
				CategoryMultiplier: 1.0,
				Difficulty:         1,
				Priority:           vo.Priority("bogus"),
				ResolvedAt:         resolved,
			},
			want: 100,
		},
		{
			name: "zero base points",
			in: ScoreInput{
				BasePoints:         0,
				CategoryMultiplier: 2.0,
				Difficulty:         5,
				Priority:           vo.PriorityUrgent,
				ResolvedAt:         resolved,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePoints(tt.in))
		})
	}
}

func TestDistributeShare(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		assignees int
		want      int
	}{
		{name: "single assignee gets everything", points: 360, assignees: 1, want: 360},
		{name: "even split", points: 360, assignees: 3, want: 120},
		{name: "remainder dropped", points: 100, assignees: 3, want: 33},
		{name: "no assignees", points: 360, assignees: 0, want: 0},
		{name: "zero points", points: 0, assignees: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistributeShare(tt.points, tt.assignees))
		})
	}
}
