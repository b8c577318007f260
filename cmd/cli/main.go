package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/sportsboard/internal/app"
	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sportsboard",
	Short: "Query standings, schedules and events from the sports backend",
	Long: `A command-line client over the same services the HTTP API serves.
Configuration is read from the environment and .env; --base-url overrides
SPORTS_API_BASE_URL.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "sports backend base URL (overrides SPORTS_API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend calls to stderr")
}

// withContainer builds the application for one command and releases it after.
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.SportsAPIBaseURL = baseURL
	}
	cfg.MetricsEnabled = false
	cfg.SocketEnabled = false
	cfg.StateDriver = config.StateDriverMemory

	logger := logging.NewNop()
	if verbose {
		logger = logging.New(logging.LevelDebug, os.Stderr)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	container, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		return err
	}
	defer func() { _ = container.Close() }()

	return fn(ctx, container)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
