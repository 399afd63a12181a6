package usecases

import (
	"context"

	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type DeleteWorkOrderCommand struct {
	WorkOrderID uint
}

type DeleteWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewDeleteWorkOrderUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *DeleteWorkOrderUseCase {
	return &DeleteWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *DeleteWorkOrderUseCase) Execute(ctx context.Context, cmd DeleteWorkOrderCommand) error {
	uc.logger.Infow("executing delete work order use case", "work_order_id", cmd.WorkOrderID)

	if cmd.WorkOrderID == 0 {
		return errors.NewValidationError("work order ID is required")
	}

	if _, err := uc.workOrderRepo.FindByID(ctx, cmd.WorkOrderID); err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return err
	}

	if err := uc.workOrderRepo.Delete(ctx, cmd.WorkOrderID); err != nil {
		uc.logger.Errorw("failed to delete work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return err
	}

	uc.logger.Infow("work order deleted", "work_order_id", cmd.WorkOrderID)
	return nil
}
