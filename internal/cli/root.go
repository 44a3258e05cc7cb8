// Package cli provides the command-line interface for the agent.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"japanfinagent/internal/adapters"
	"japanfinagent/internal/analysis"
	"japanfinagent/internal/config"
	"japanfinagent/internal/logging"
)

// Version of the agent.
const Version = "0.1.0"

// App holds the application dependencies shared by all commands.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Sources  *adapters.Sources
	Analysis *analysis.Service
}

// Execute loads configuration, builds the command tree and runs it with a
// signal-aware context for graceful shutdown.
func Execute() error {
	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(cfg, logger).ExecuteContext(ctx)
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "japanfinagent",
		Short: "Japan Finance Agent - compound analysis from 5 data sources",
		Long: `Japan Finance Agent aggregates Japanese financial data sources
(EDINET filings, TDnet disclosures, e-Stat statistics, BOJ datasets and
stock prices) into compound analysis results.

Sources that are not configured are skipped, not errors: every command
reports whatever subset of sources answered.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			app.Sources = adapters.New(app.Config, app.Logger)
			app.Analysis = analysis.New(app.Sources, app.Config.FetchTimeout, app.Logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newMacroCmd(app))
	rootCmd.AddCommand(newMonitorCmd(app))
	rootCmd.AddCommand(newLatestCmd(app))
	rootCmd.AddCommand(newDatasetCmd(app))
	rootCmd.AddCommand(newTestCmd(app))
	rootCmd.AddCommand(newServeCmd(app))

	return rootCmd
}
