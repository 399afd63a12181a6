package workorder

import (
	"fmt"
	"time"
)

const MaxCommentLength = 2000

type Comment struct {
	id          uint
	workOrderID uint
	authorID    uint
	content     string
	createdAt   time.Time
}

func NewComment(workOrderID, authorID uint, content string) (*Comment, error) {
	if workOrderID == 0 {
		return nil, fmt.Errorf("work order ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("comment content is required")
	}
	if len(content) > MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		workOrderID: workOrderID,
		authorID:    authorID,
		content:     content,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructComment(id, workOrderID, authorID uint, content string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if workOrderID == 0 {
		return nil, fmt.Errorf("work order ID is required")
	}

	return &Comment{
		id:          id,
		workOrderID: workOrderID,
		authorID:    authorID,
		content:     content,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) WorkOrderID() uint    { return c.workOrderID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
