package main

import (
	"os"

	"github.com/spf13/cobra"

	"workdesk/internal/interfaces/cli/geocode"
	"workdesk/internal/interfaces/cli/mailroom"
	"workdesk/internal/interfaces/cli/migrate"
	"workdesk/internal/interfaces/cli/points"
	"workdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workdesk",
		Short: "Workdesk - a helpdesk and work order service",
		Long:  `Workdesk is a helpdesk service with work order tracking, gamified scoring, and mailbox-to-ticket ingestion.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		mailroom.NewCommand(),
		points.NewCommand(),
		geocode.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
