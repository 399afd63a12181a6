package catalog

import (
	"fmt"
	"time"
)

// TaskCategory labels work orders and carries the category score multiplier.
// A zero multiplier is a valid configuration; resolved orders in such a
// category simply score no points.
type TaskCategory struct {
	id         uint
	name       string
	color      string
	multiplier float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTaskCategory(name, color string, multiplier float64) (*TaskCategory, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}
	if len(color) > 20 {
		return nil, fmt.Errorf("category color exceeds maximum length of 20 characters")
	}
	if multiplier < 0 {
		return nil, fmt.Errorf("multiplier cannot be negative")
	}

	now := time.Now()
	return &TaskCategory{
		name:       name,
		color:      color,
		multiplier: multiplier,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTaskCategory(id uint, name, color string, multiplier float64, createdAt, updatedAt time.Time) (*TaskCategory, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}

	return &TaskCategory{
		id:         id,
		name:       name,
		color:      color,
		multiplier: multiplier,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *TaskCategory) ID() uint             { return c.id }
func (c *TaskCategory) Name() string         { return c.name }
func (c *TaskCategory) Color() string        { return c.color }
func (c *TaskCategory) Multiplier() float64  { return c.multiplier }
func (c *TaskCategory) CreatedAt() time.Time { return c.createdAt }
func (c *TaskCategory) UpdatedAt() time.Time { return c.updatedAt }

func (c *TaskCategory) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *TaskCategory) Update(name, color string, multiplier float64) error {
	if len(name) == 0 {
		return fmt.Errorf("category name is required")
	}
	if len(color) > 20 {
		return fmt.Errorf("category color exceeds maximum length of 20 characters")
	}
	if multiplier < 0 {
		return fmt.Errorf("multiplier cannot be negative")
	}

	c.name = name
	c.color = color
	c.multiplier = multiplier
	c.updatedAt = time.Now()
	return nil
}
