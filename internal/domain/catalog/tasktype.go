package catalog

import (
	"fmt"
	"time"
)

// TaskType is a kind of work the desk handles, e.g. plumbing or IT support.
// BasePoints seeds the scoring formula for every order of this type.
type TaskType struct {
	id         uint
	name       string
	basePoints int
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTaskType(name string, basePoints int) (*TaskType, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("task type name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("task type name exceeds maximum length of 100 characters")
	}
	if basePoints < 0 {
		return nil, fmt.Errorf("base points cannot be negative")
	}

	now := time.Now()
	return &TaskType{
		name:       name,
		basePoints: basePoints,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTaskType(id uint, name string, basePoints int, active bool, createdAt, updatedAt time.Time) (*TaskType, error) {
	if id == 0 {
		return nil, fmt.Errorf("task type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("task type name is required")
	}

	return &TaskType{
		id:         id,
		name:       name,
		basePoints: basePoints,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *TaskType) ID() uint             { return t.id }
func (t *TaskType) Name() string         { return t.name }
func (t *TaskType) BasePoints() int      { return t.basePoints }
func (t *TaskType) IsActive() bool       { return t.active }
func (t *TaskType) CreatedAt() time.Time { return t.createdAt }
func (t *TaskType) UpdatedAt() time.Time { return t.updatedAt }

func (t *TaskType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task type ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *TaskType) Update(name string, basePoints int) error {
	if len(name) == 0 {
		return fmt.Errorf("task type name is required")
	}
	if basePoints < 0 {
		return fmt.Errorf("base points cannot be negative")
	}

	t.name = name
	t.basePoints = basePoints
	t.updatedAt = time.Now()
	return nil
}

func (t *TaskType) Deactivate() {
	t.active = false
	t.updatedAt = time.Now()
}

func (t *TaskType) Activate() {
	t.active = true
	t.updatedAt = time.Now()
}
