package workorder

import (
	"context"
	"time"

	vo "workdesk/internal/domain/workorder/valueobjects"
)

// Filter narrows work order listings. Nil fields match everything.
type Filter struct {
	Status      *vo.Status
	Priority    *vo.Priority
	TaskTypeID  *uint
	CategoryID  *uint
	RequesterID *uint
	AssigneeID  *uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type Repository interface {
	Create(ctx context.Context, order *WorkOrder) error
	FindByID(ctx context.Context, id uint) (*WorkOrder, error)
	FindByNumber(ctx context.Context, number string) (*WorkOrder, error)
	List(ctx context.Context, filter Filter, offset, limit int, orderBy string) ([]*WorkOrder, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Update(ctx context.Context, order *WorkOrder) error
	Delete(ctx context.Context, id uint) error

	// FindResolvedByAssignee returns every resolved order the user shares in,
	// used by the scoring backfill and KPI reports.
	FindResolvedByAssignee(ctx context.Context, assigneeID uint) ([]*WorkOrder, error)
	FindResolvedBetween(ctx context.Context, from, to time.Time) ([]*WorkOrder, error)
	CountByStatus(ctx context.Context) (map[vo.Status]int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	FindByWorkOrderID(ctx context.Context, workOrderID uint) ([]*Comment, error)
	Delete(ctx context.Context, id uint) error
}
