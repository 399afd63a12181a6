package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type BackfillPointsCommand struct {
	DryRun bool
}

type BackfillPointsResult struct {
	OrdersScored  int
	OrdersSkipped int
	TotalPoints   int
	DryRun        bool
}

// BackfillPointsUseCase scores resolved work orders that predate the scoring
// engine. An order with zero points is treated as unscored, which also
// re-scores orders whose formula legitimately produced zero; re-running is
// harmless since the formula is deterministic.
type BackfillPointsUseCase struct {
	workOrderRepo workorder.Repository
	taskTypeRepo  catalog.TaskTypeRepository
	categoryRepo  catalog.TaskCategoryRepository
	profileRepo   gamification.ProfileRepository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewBackfillPointsUseCase(
	workOrderRepo workorder.Repository,
	taskTypeRepo catalog.TaskTypeRepository,
	categoryRepo catalog.TaskCategoryRepository,
	profileRepo gamification.ProfileRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *BackfillPointsUseCase {
	return &BackfillPointsUseCase{
		workOrderRepo: workOrderRepo,
		taskTypeRepo:  taskTypeRepo,
		categoryRepo:  categoryRepo,
		profileRepo:   profileRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *BackfillPointsUseCase) Execute(ctx context.Context, cmd BackfillPointsCommand) (*BackfillPointsResult, error) {
	uc.logger.Infow("backfilling work order points", "dry_run", cmd.DryRun)

	orders, err := uc.workOrderRepo.FindResolvedBetween(ctx, time.Time{}, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to load resolved orders", "error", err)
		return nil, err
	}

	result := &BackfillPointsResult{DryRun: cmd.DryRun}

	for _, order := range orders {
		if order.PointsEarned() != 0 {
			result.OrdersSkipped++
			continue
		}

		points, err := uc.scoreOrder(ctx, order)
		if err != nil {
			uc.logger.Warnw("skipping unscorable order", "work_order_id", order.ID(), "error", err)
			result.OrdersSkipped++
			continue
		}

		result.OrdersScored++
		result.TotalPoints += points

		if cmd.DryRun {
			uc.logger.Infow("would backfill", "work_order_id", order.ID(), "number", order.Number(), "points", points)
			continue
		}

		if err := uc.persistBackfill(ctx, order, points); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("backfill finished",
		"scored", result.OrdersScored,
		"skipped", result.OrdersSkipped,
		"points", result.TotalPoints,
		"dry_run", cmd.DryRun,
	)
	return result, nil
}

func (uc *BackfillPointsUseCase) scoreOrder(ctx context.Context, order *workorder.WorkOrder) (int, error) {
	taskType, err := uc.taskTypeRepo.FindByID(ctx, order.TaskTypeID())
	if err != nil {
		return 0, err
	}
	category, err := uc.categoryRepo.FindByID(ctx, order.CategoryID())
	if err != nil {
		return 0, err
	}

	return gamification.CalculatePoints(gamification.ScoreInput{
		BasePoints:         taskType.BasePoints(),
		CategoryMultiplier: category.Multiplier(),
		Difficulty:         order.Difficulty(),
		Priority:           order.Priority(),
		DueDate:            order.DueDate(),
		ResolvedAt:         *order.ResolvedAt(),
	}), nil
}

func (uc *BackfillPointsUseCase) persistBackfill(ctx context.Context, order *workorder.WorkOrder, points int) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := order.BackfillPoints(points); err != nil {
			return err
		}
		if err := uc.workOrderRepo.Update(txCtx, order); err != nil {
			return err
		}

		assignees := order.AssigneeIDs()
		if len(assignees) == 0 {
			return nil
		}

		share := gamification.DistributeShare(points, len(assignees))
		duration, _ := order.ResolutionDuration()

		for _, userID := range assignees {
			profile, err := uc.profileRepo.FindByUserID(txCtx, userID)
			if err != nil {
				if !errors.IsNotFoundError(err) {
					return err
				}
				profile, err = gamification.NewProfile(userID)
				if err != nil {
					return err
				}
				if err := uc.profileRepo.Create(txCtx, profile); err != nil {
					return err
				}
			}

			if err := profile.AddResolution(share, duration); err != nil {
				return err
			}
			profile.RefreshBadges()
			if err := uc.profileRepo.Update(txCtx, profile); err != nil {
				return err
			}
		}
		return nil
	})
}
