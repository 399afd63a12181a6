package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type UpdateWorkOrderCommand struct {
	WorkOrderID  uint
	Title        string
	Description  string
	Priority     string
	Difficulty   int
	DueDate      *time.Time
	LocationName *string
	Latitude     *float64
	Longitude    *float64
}

type UpdateWorkOrderResult struct {
	WorkOrderID uint
	UpdatedAt   time.Time
}

type UpdateWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewUpdateWorkOrderUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *UpdateWorkOrderUseCase {
	return &UpdateWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *UpdateWorkOrderUseCase) Execute(ctx context.Context, cmd UpdateWorkOrderCommand) (*UpdateWorkOrderResult, error) {
	uc.logger.Infow("executing update work order use case", "work_order_id", cmd.WorkOrderID)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}

	order, err := uc.workOrderRepo.FindByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	if order.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot edit a closed work order")
	}

	if err := order.UpdateDetails(cmd.Title, cmd.Description, vo.Priority(cmd.Priority), cmd.Difficulty); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	order.SetDueDate(cmd.DueDate)
	if cmd.LocationName != nil {
		order.SetLocation(*cmd.LocationName, cmd.Latitude, cmd.Longitude)
	}

	if err := uc.workOrderRepo.Update(ctx, order); err != nil {
		uc.logger.Errorw("failed to save work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	return &UpdateWorkOrderResult{
		WorkOrderID: order.ID(),
		UpdatedAt:   order.UpdatedAt(),
	}, nil
}
