package mailroom

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appmailroom "workdesk/internal/application/mailroom"
	workorderusecases "workdesk/internal/application/workorder/usecases"
	"workdesk/internal/infrastructure/config"
	"workdesk/internal/infrastructure/database"
	"workdesk/internal/infrastructure/mail"
	"workdesk/internal/infrastructure/repository"
	"workdesk/internal/shared/logger"
)

var (
	env     string
	account string
	dryRun  bool
	limit   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailroom",
		Short: "Mailbox ingestion tools",
		Long:  `Poll configured mailbox accounts and turn new messages into work orders.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newProcessCommand())

	return cmd
}

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the ingestion pipeline once",
		Long:  `Fetch unseen messages from every active mailbox account (or a single named account) and create work orders from them.`,
		RunE:  runProcess,
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "Process only the named account")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify messages without creating work orders")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Override the per-account fetch limit")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger().With("component", "mailroom")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	workOrderRepo := repository.NewWorkOrderRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	categoryRepo := repository.NewTaskCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewMailboxAccountRepository(db)
	processedRepo := repository.NewProcessedMessageRepository(db)
	templateRepo := repository.NewReplyTemplateRepository(db)
	numberGen := repository.NewSequenceNumberGenerator(db)

	createUC := workorderusecases.NewCreateWorkOrderUseCase(workOrderRepo, taskTypeRepo, categoryRepo, numberGen, log)

	clientFactory := mail.NewClientFactory(cfg.Mailroom, log)
	sender := mail.NewSMTPSender(cfg.Email)

	service := appmailroom.NewService(accountRepo, processedRepo, templateRepo, userRepo, clientFactory, createUC, sender, log)

	fetchLimit := cfg.Mailroom.FetchLimit
	if limit > 0 {
		fetchLimit = limit
	}
	opts := appmailroom.ProcessOptions{FetchLimit: fetchLimit, DryRun: dryRun}

	ctx := context.Background()

	if account != "" {
		summary, err := service.ProcessAccountByName(ctx, account, opts)
		if err != nil {
			return fmt.Errorf("failed to process account %q: %w", account, err)
		}
		printSummary(summary)
		return nil
	}

	summaries, err := service.ProcessAll(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to process accounts: %w", err)
	}

	var fetched, created, duplicates, failures int
	for _, summary := range summaries {
		printSummary(summary)
		fetched += summary.Fetched
		created += summary.Created
		duplicates += summary.Duplicates
		failures += summary.Failures
	}

	fmt.Printf("\nTotal: %d accounts, %d fetched, %d created, %d duplicates, %d failures\n",
		len(summaries), fetched, created, duplicates, failures)
	return nil
}

func printSummary(summary *appmailroom.RunSummary) {
	mode := ""
	if summary.DryRun {
		mode = " (dry run)"
	}
	fmt.Printf("%s%s: fetched %d, created %d, duplicates %d, failures %d in %s\n",
		summary.Account, mode,
		summary.Fetched, summary.Created, summary.Duplicates, summary.Failures,
		summary.FinishedAt.Sub(summary.StartedAt).Round(10*time.Millisecond))
}
