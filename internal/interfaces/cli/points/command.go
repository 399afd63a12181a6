package points

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gamificationusecases "workdesk/internal/application/gamification/usecases"
	"workdesk/internal/infrastructure/config"
	"workdesk/internal/infrastructure/database"
	"workdesk/internal/infrastructure/repository"
	shareddb "workdesk/internal/shared/db"
	"workdesk/internal/shared/logger"
)

var (
	env    string
	dryRun bool
	reset  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Scoring maintenance tools",
		Long:  `Rebuild or backfill gamification profiles from the resolved work orders on record.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without writing them")

	cmd.AddCommand(
		newRecalculateCommand(),
		newBackfillCommand(),
	)

	return cmd
}

func newRecalculateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Rebuild every profile from resolved work orders",
		Long:  `Zero every profile and replay the resolved work orders on record through the scoring engine.`,
		RunE:  runRecalculate,
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Only zero the profiles, skip the replay")

	return cmd
}

func newBackfillCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Score resolved work orders that have no points",
		Long:  `Compute and credit points for resolved work orders that were closed before the scoring engine existed.`,
		RunE:  runBackfill,
	}
}

type deps struct {
	recalculateUC *gamificationusecases.RecalculateProfilesUseCase
	backfillUC    *gamificationusecases.BackfillPointsUseCase
}

func initDeps() (*deps, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger().With("component", "points")

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.Get()

	workOrderRepo := repository.NewWorkOrderRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	categoryRepo := repository.NewTaskCategoryRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	return &deps{
		recalculateUC: gamificationusecases.NewRecalculateProfilesUseCase(profileRepo, workOrderRepo, txMgr, log),
		backfillUC:    gamificationusecases.NewBackfillPointsUseCase(workOrderRepo, taskTypeRepo, categoryRepo, profileRepo, txMgr, log),
	}, nil
}

func runRecalculate(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	result, err := d.recalculateUC.Execute(context.Background(), gamificationusecases.RecalculateProfilesCommand{
		DryRun:    dryRun,
		ResetOnly: reset,
	})
	if err != nil {
		return fmt.Errorf("recalculation failed: %w", err)
	}

	mode := ""
	if result.DryRun {
		mode = " (dry run)"
	}
	fmt.Printf("Recalculation%s: %d profiles processed, %d orders replayed, %d total points\n",
		mode, result.ProfilesProcessed, result.OrdersReplayed, result.TotalPoints)
	return nil
}

func runBackfill(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	result, err := d.backfillUC.Execute(context.Background(), gamificationusecases.BackfillPointsCommand{
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	mode := ""
	if result.DryRun {
		mode = " (dry run)"
	}
	fmt.Printf("Backfill%s: %d orders scored, %d skipped, %d total points\n",
		mode, result.OrdersScored, result.OrdersSkipped, result.TotalPoints)
	return nil
}
