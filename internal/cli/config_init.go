package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stockroom/pagenav/internal/config"
)

// projectConfigDir is the project-local configuration directory created by --project.
const projectConfigDir = ".pagenav"

// NewConfigInitCmd creates the config init command for initializing configuration.
// By default it writes the global configuration file; with --project it writes
// .pagenav/config.yaml in the working directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Without flags the global configuration is written to the --config path,
$PAGENAV_CONFIG, or ~/.pagenav/config.yaml. Use --project to create a
project-local .pagenav/config.yaml in the current directory; its sections override
the global configuration for commands run inside the project.`,
		Example: `  # Create global configuration
  pagenav config init

  # Create project-local configuration
  pagenav config init --project

  # Create configuration, overwriting existing
  pagenav config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.GetGlobalConfig().ConfigPath()
			if project {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolving working directory: %w", err)
				}
				path = filepath.Join(cwd, projectConfigDir, "config.yaml")
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create project-local configuration in ./.pagenav")

	return cmd
}

// initConfig writes a default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.New()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration after environment overrides and the project overlay.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  # Show configuration with overrides applied
  PAGENAV_DELTA=1 pagenav config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.ConfigPath())
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}
