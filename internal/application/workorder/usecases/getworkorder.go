package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type GetWorkOrderQuery struct {
	WorkOrderID uint
	Number      string
}

type WorkOrderDTO struct {
	ID           uint
	Number       string
	Title        string
	Description  string
	TaskTypeID   uint
	CategoryID   uint
	Priority     string
	Status       string
	RequesterID  uint
	AssigneeIDs  []uint
	LocationName string
	Latitude     *float64
	Longitude    *float64
	Difficulty   int
	DueDate      *time.Time
	ResolvedAt   *time.Time
	PointsEarned int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CommentDTO struct {
	ID          uint
	WorkOrderID uint
	AuthorID    uint
	Content     string
	CreatedAt   time.Time
}

type GetWorkOrderResult struct {
	WorkOrder WorkOrderDTO
	Comments  []CommentDTO
}

type GetWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	commentRepo   workorder.CommentRepository
	logger        logger.Interface
}

func NewGetWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	commentRepo workorder.CommentRepository,
	logger logger.Interface,
) *GetWorkOrderUseCase {
	return &GetWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

func (uc *GetWorkOrderUseCase) Execute(ctx context.Context, query GetWorkOrderQuery) (*GetWorkOrderResult, error) {
	var (
		order *workorder.WorkOrder
		err   error
	)

	switch {
	case query.WorkOrderID != 0:
		order, err = uc.workOrderRepo.FindByID(ctx, query.WorkOrderID)
	case query.Number != "":
		order, err = uc.workOrderRepo.FindByNumber(ctx, query.Number)
	default:
		return nil, errors.NewValidationError("work order ID or number is required")
	}

	if err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", query.WorkOrderID, "number", query.Number, "error", err)
		return nil, err
	}

	comments, err := uc.commentRepo.FindByWorkOrderID(ctx, order.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "work_order_id", order.ID(), "error", err)
		return nil, err
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, CommentDTO{
			ID:          c.ID(),
			WorkOrderID: c.WorkOrderID(),
			AuthorID:    c.AuthorID(),
			Content:     c.Content(),
			CreatedAt:   c.CreatedAt(),
		})
	}

	return &GetWorkOrderResult{
		WorkOrder: toWorkOrderDTO(order),
		Comments:  commentDTOs,
	}, nil
}

func toWorkOrderDTO(order *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:           order.ID(),
		Number:       order.Number(),
		Title:        order.Title(),
		Description:  order.Description(),
		TaskTypeID:   order.TaskTypeID(),
		CategoryID:   order.CategoryID(),
		Priority:     order.Priority().String(),
		Status:       order.Status().String(),
		RequesterID:  order.RequesterID(),
		AssigneeIDs:  order.AssigneeIDs(),
		LocationName: order.LocationName(),
		Latitude:     order.Latitude(),
		Longitude:    order.Longitude(),
		Difficulty:   order.Difficulty(),
		DueDate:      order.DueDate(),
		ResolvedAt:   order.ResolvedAt(),
		PointsEarned: order.PointsEarned(),
		CreatedAt:    order.CreatedAt(),
		UpdatedAt:    order.UpdatedAt(),
	}
}
