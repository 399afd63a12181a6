package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	WorkOrderID uint
	NewStatus   string
}

type ChangeStatusResult struct {
	WorkOrderID  uint
	OldStatus    string
	NewStatus    string
	PointsEarned int
	ResolvedAt   *time.Time
	UpdatedAt    time.Time
}

// ChangeStatusUseCase drives the lifecycle. The first transition into
// resolved also runs the scoring pass: compute the order's points, split
// them across assignees, and credit each assignee's profile, all in one
// transaction with the order update.
type ChangeStatusUseCase struct {
	workOrderRepo workorder.Repository
	taskTypeRepo  catalog.TaskTypeRepository
	categoryRepo  catalog.TaskCategoryRepository
	profileRepo   gamification.ProfileRepository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewChangeStatusUseCase(
	workOrderRepo workorder.Repository,
	taskTypeRepo catalog.TaskTypeRepository,
	categoryRepo catalog.TaskCategoryRepository,
	profileRepo gamification.ProfileRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		workOrderRepo: workOrderRepo,
		taskTypeRepo:  taskTypeRepo,
		categoryRepo:  categoryRepo,
		profileRepo:   profileRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "work_order_id", cmd.WorkOrderID, "new_status", cmd.NewStatus)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	order, err := uc.workOrderRepo.FindByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	oldStatus := order.Status()
	wasResolved := order.ResolvedAt() != nil

	if err := order.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("status transition rejected",
			"work_order_id", cmd.WorkOrderID,
			"from", oldStatus.String(),
			"to", newStatus.String(),
			"error", err,
		)
		return nil, errors.NewValidationError(err.Error())
	}

	freshlyResolved := !wasResolved && order.ResolvedAt() != nil

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if freshlyResolved {
			if err := uc.scoreResolution(txCtx, order); err != nil {
				return err
			}
		}
		return uc.workOrderRepo.Update(txCtx, order)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to update work order status", "work_order_id", cmd.WorkOrderID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("work order status changed",
		"work_order_id", order.ID(),
		"from", oldStatus.String(),
		"to", order.Status().String(),
		"points", order.PointsEarned(),
	)

	return &ChangeStatusResult{
		WorkOrderID:  order.ID(),
		OldStatus:    oldStatus.String(),
		NewStatus:    order.Status().String(),
		PointsEarned: order.PointsEarned(),
		ResolvedAt:   order.ResolvedAt(),
		UpdatedAt:    order.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) scoreResolution(ctx context.Context, order *workorder.WorkOrder) error {
	taskType, err := uc.taskTypeRepo.FindByID(ctx, order.TaskTypeID())
	if err != nil {
		return err
	}
	category, err := uc.categoryRepo.FindByID(ctx, order.CategoryID())
	if err != nil {
		return err
	}

	points := gamification.CalculatePoints(gamification.ScoreInput{
		BasePoints:         taskType.BasePoints(),
		CategoryMultiplier: category.Multiplier(),
		Difficulty:         order.Difficulty(),
		Priority:           order.Priority(),
		DueDate:            order.DueDate(),
		ResolvedAt:         *order.ResolvedAt(),
	})

	if err := order.AwardPoints(points); err != nil {
		return errors.NewInternalError("failed to award points", err.Error())
	}

	assignees := order.AssigneeIDs()
	if len(assignees) == 0 {
		return nil
	}

	share := gamification.DistributeShare(points, len(assignees))
	duration, _ := order.ResolutionDuration()

	for _, userID := range assignees {
		if err := uc.creditAssignee(ctx, userID, share, duration); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ChangeStatusUseCase) creditAssignee(ctx context.Context, userID uint, share int, duration time.Duration) error {
	profile, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		profile, err = gamification.NewProfile(userID)
		if err != nil {
			return errors.NewInternalError("failed to create profile", err.Error())
		}
		if err := uc.profileRepo.Create(ctx, profile); err != nil {
			return err
		}
	}

	if err := profile.AddResolution(share, duration); err != nil {
		return errors.NewInternalError("failed to credit profile", err.Error())
	}
	profile.RefreshBadges()

	return uc.profileRepo.Update(ctx, profile)
}
