package usecases

import (
	"context"

	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/logger"
)

type RecalculateProfilesCommand struct {
	DryRun bool
	// ResetOnly wipes every profile back to zero without replaying history.
	ResetOnly bool
}

type RecalculateProfilesResult struct {
	ProfilesProcessed int
	OrdersReplayed    int
	TotalPoints       int
	DryRun            bool
}

// RecalculateProfilesUseCase rebuilds every profile from the resolved work
// orders on record: each profile is zeroed, then every resolved order the
// user shares in is replayed through the same crediting path the live
// resolution flow uses. A drifted or manually edited profile ends up
// exactly where the replay puts it.
type RecalculateProfilesUseCase struct {
	profileRepo   gamification.ProfileRepository
	workOrderRepo workorder.Repository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewRecalculateProfilesUseCase(
	profileRepo gamification.ProfileRepository,
	workOrderRepo workorder.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RecalculateProfilesUseCase {
	return &RecalculateProfilesUseCase{
		profileRepo:   profileRepo,
		workOrderRepo: workOrderRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *RecalculateProfilesUseCase) Execute(ctx context.Context, cmd RecalculateProfilesCommand) (*RecalculateProfilesResult, error) {
	uc.logger.Infow("recalculating profiles", "dry_run", cmd.DryRun, "reset_only", cmd.ResetOnly)

	profiles, err := uc.profileRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, err
	}

	result := &RecalculateProfilesResult{DryRun: cmd.DryRun}

	for _, profile := range profiles {
		profile.Reset()

		if !cmd.ResetOnly {
			orders, err := uc.workOrderRepo.FindResolvedByAssignee(ctx, profile.UserID())
			if err != nil {
				uc.logger.Errorw("failed to load resolved orders", "user_id", profile.UserID(), "error", err)
				return nil, err
			}

			replayed, credited := uc.replay(profile, orders)
			result.OrdersReplayed += replayed
			result.TotalPoints += credited
		}

		profile.RefreshBadges()
		result.ProfilesProcessed++

		if cmd.DryRun {
			continue
		}

		if err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.profileRepo.Update(txCtx, profile)
		}); err != nil {
			uc.logger.Errorw("failed to save profile", "user_id", profile.UserID(), "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("profile recalculation finished",
		"profiles", result.ProfilesProcessed,
		"orders", result.OrdersReplayed,
		"points", result.TotalPoints,
		"dry_run", cmd.DryRun,
	)
	return result, nil
}

func (uc *RecalculateProfilesUseCase) replay(profile *gamification.Profile, orders []*workorder.WorkOrder) (replayed, credited int) {
	for _, order := range orders {
		duration, ok := order.ResolutionDuration()
		if !ok {
			continue
		}
		share := gamification.DistributeShare(order.PointsEarned(), len(order.AssigneeIDs()))
		if err := profile.AddResolution(share, duration); err != nil {
			uc.logger.Warnw("skipping unreplayable order", "work_order_id", order.ID(), "error", err)
			continue
		}
		replayed++
		credited += share
	}
	return replayed, credited
}
