package geocode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"workdesk/internal/infrastructure/config"
	"workdesk/internal/infrastructure/geocoding"
	"workdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geocode",
		Short: "Geocoding tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newLookupCommand())

	return cmd
}

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <query>",
		Short: "Resolve a location query to coordinates",
		Long:  `Send a free-text location query to the configured geocoding service and print the first match.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	client := geocoding.NewNominatimClient(cfg.Geocoding, logger.NewLogger())

	timeout := time.Duration(cfg.Geocoding.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	query := strings.Join(args, " ")
	result, err := client.Lookup(ctx, query)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Printf("%s\n  latitude:  %.7f\n  longitude: %.7f\n", result.DisplayName, result.Latitude, result.Longitude)
	return nil
}
