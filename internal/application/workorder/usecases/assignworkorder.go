package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/user"
	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type AssignWorkOrderCommand struct {
	WorkOrderID uint
	AssigneeIDs []uint
}

type AssignWorkOrderResult struct {
	WorkOrderID uint
	AssigneeIDs []uint
	UpdatedAt   time.Time
}

type AssignWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewAssignWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignWorkOrderUseCase {
	return &AssignWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *AssignWorkOrderUseCase) Execute(ctx context.Context, cmd AssignWorkOrderCommand) (*AssignWorkOrderResult, error) {
	uc.logger.Infow("executing assign work order use case", "work_order_id", cmd.WorkOrderID, "assignees", cmd.AssigneeIDs)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}

	order, err := uc.workOrderRepo.FindByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	if order.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot reassign a closed work order")
	}

	for _, userID := range cmd.AssigneeIDs {
		if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
			uc.logger.Warnw("assignee not found", "user_id", userID)
			return nil, err
		}
	}

	if err := order.SetAssignees(cmd.AssigneeIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workOrderRepo.Update(ctx, order); err != nil {
		uc.logger.Errorw("failed to save assignment", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	return &AssignWorkOrderResult{
		WorkOrderID: order.ID(),
		AssigneeIDs: order.AssigneeIDs(),
		UpdatedAt:   order.UpdatedAt(),
	}, nil
}
