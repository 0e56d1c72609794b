package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/stockroom/pagenav/internal/logging"
)

// EnvProjectDir overrides project directory discovery.
const EnvProjectDir = "PAGENAV_PROJECT_DIR"

// ResolveProjectDir determines the project-local .pagenav directory.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. PAGENAV_PROJECT_DIR env var
//  3. walking up from startDir until a directory containing .pagenav/ is found
//
// The walk skips the directory holding the global config file, so ~/.pagenav is
// never mistaken for a project. Returns an absolute path, or "" when no project
// directory exists.
// Does NOT create the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	globalDir := globalConfigDir()
	for {
		candidate := filepath.Join(dir, configDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != globalDir {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// WithProjectOverlay shallow-merges projectDir/config.yaml onto a copy of base and
// re-applies the PAGENAV_* environment overrides, which always win over files.
// A missing overlay, or one that is base's own file, is not an error; an
// unreadable one is logged and ignored.
func WithProjectOverlay(ctx context.Context, base *Config, projectDir string) *Config {
	if projectDir == "" {
		return base
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return base
	}
	if samePath(overlayPath, base.ConfigPath()) {
		return base
	}

	merged := *base
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global settings")
		return base
	}

	if err := merged.ApplyEnvOverrides(); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Msg("failed to apply environment overrides to project config, using global settings")
		return base
	}

	if err := merged.Validate(); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("project config is invalid, using global settings")
		return base
	}

	return &merged
}

// toAbsProjectDir converts dir to an absolute path ending in .pagenav.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == configDirName {
		return abs
	}

	return filepath.Join(abs, configDirName)
}

// globalConfigDir returns the absolute directory of the default global config file.
func globalConfigDir() string {
	dir, err := filepath.Abs(filepath.Dir(DefaultConfigPath()))
	if err != nil {
		return ""
	}
	return dir
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
