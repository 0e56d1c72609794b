package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagenav CLI.
// It loads configuration (global file, environment, project overlay), wires up logging
// and tracing, and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "pagenav",
		Short:         "Pagination controls for paged listings",
		Long:          "pagenav: compute pagination ranges and browse paged inventory listings",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, configPath); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $PAGENAV_CONFIG or ~/.pagenav/config.yaml)")

	cmd.AddCommand(
		NewRangeCmd(), NewGotoCmd(), NewListCmd(), NewBrowseCmd(), NewServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig installs the global configuration: the --config file (or the default
// path), then the project overlay found from the working directory, with environment
// overrides applied on top of both.
func loadConfig(cmd *cobra.Command, path string) error {
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	projectDir := config.ResolveProjectDir(cmd.Context(), "", cwd)
	config.SetGlobalConfig(config.WithProjectOverlay(cmd.Context(), cfg, projectDir))

	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigShowCmd(), NewConfigInitCmd())
	return cmd
}

const rootCmdExample = `  # Show the controls for page 10 of 20
  pagenav range --current 10 --total 20

  # Check whether moving from page 3 to page 4 is allowed
  pagenav goto --current 3 --requested 4 --total 10

  # Print the second page of an inventory listing as JSON
  pagenav list --file stock.yaml --page 2 --output json

  # Browse a listing interactively
  pagenav browse --file stock.yaml

  # Serve the HTTP API
  pagenav serve --file stock.yaml --addr :8080

  # Initialize configuration
  pagenav config init`
