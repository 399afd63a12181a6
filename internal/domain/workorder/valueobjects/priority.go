package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// priorityPointsMultipliers weight earned points by urgency.
var priorityPointsMultipliers = map[Priority]float64{
	PriorityLow:    1.0,
	PriorityMedium: 1.2,
	PriorityHigh:   1.5,
	PriorityUrgent: 2.0,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// PointsMultiplier returns the scoring weight for this priority.
// Unrecognized priorities fall back to 1.0.
func (p Priority) PointsMultiplier() float64 {
	m, ok := priorityPointsMultipliers[p]
	if !ok {
		return 1.0
	}
	return m
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}
