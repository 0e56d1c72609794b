package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/config"
)

// clearEnv blanks every PAGENAV_* variable the loader reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvConfig, config.EnvHome, config.EnvLogLevel, config.EnvLogFormat,
		config.EnvOutput, config.EnvDelta, config.EnvPageSize, config.EnvAddr,
	} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.New()

	assert.Equal(t, config.SchemaVersion, cfg.Version)
	assert.Equal(t, 3, cfg.Pagination.Delta)
	assert.Equal(t, 1, cfg.Pagination.StartAt)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/v1", cfg.Server.APIVersion)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfigPath(t *testing.T) {
	clearEnv(t)

	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	assert.Equal(t, filepath.Join(home, "config.yaml"), config.DefaultConfigPath())

	t.Setenv(config.EnvConfig, "/etc/pagenav.yaml")
	assert.Equal(t, "/etc/pagenav.yaml", config.DefaultConfigPath())
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Pagination.Delta)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeFile(t, `
version: "1.2.0"
pagination:
  delta: 2
  start_at: 1
  page_size: 50
output:
  default_format: json
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Pagination.Delta)
		assert.Equal(t, 50, cfg.Pagination.PageSize)
		assert.Equal(t, "json", cfg.Output.DefaultFormat)
		assert.Equal(t, path, cfg.ConfigPath())
		assert.Equal(t, "info", cfg.Logging.Level, "untouched sections keep defaults")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "pagination: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("unsupported schema version", func(t *testing.T) {
		_, err := config.Load(writeFile(t, `version: "2.0.0"`))
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})

	t.Run("garbage schema version", func(t *testing.T) {
		_, err := config.Load(writeFile(t, `version: "latest"`))
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})

	t.Run("negative delta", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "pagination:\n  delta: -1\n  start_at: 1\n  page_size: 10\n"))
		require.ErrorIs(t, err, config.ErrInvalidDelta)
	})

	t.Run("delta above the served limit", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "pagination:\n  delta: 1001\n  start_at: 1\n  page_size: 10\n"))
		require.ErrorIs(t, err, config.ErrInvalidDelta)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvDelta, "5")
	t.Setenv(config.EnvPageSize, "7")
	t.Setenv(config.EnvOutput, "yaml")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvAddr, "127.0.0.1:9000")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Pagination.Delta)
	assert.Equal(t, 7, cfg.Pagination.PageSize)
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoad_BadEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvDelta, "three")

	_, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvDelta)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty version is accepted", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "zero page size", mutate: func(c *config.Config) { c.Pagination.PageSize = 0 }, wantErr: config.ErrInvalidPageSize},
		{name: "huge page size", mutate: func(c *config.Config) { c.Pagination.PageSize = 5000 }, wantErr: config.ErrInvalidPageSize},
		{name: "zero start", mutate: func(c *config.Config) { c.Pagination.StartAt = 0 }, wantErr: config.ErrInvalidStartAt},
		{name: "bad format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "xml" }, wantErr: config.ErrUnsupportedOutputFmt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.SetConfigPath(path)
	cfg.Pagination.Delta = 1
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Pagination.Delta)
	assert.Equal(t, config.SchemaVersion, loaded.Version)
}

func TestGlobalConfig(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	config.SetGlobalConfig(nil)
	assert.NotNil(t, config.GetGlobalConfig())

	path := writeFile(t, "output:\n  default_format: yaml\n  locale: en\n")
	require.NoError(t, config.InitGlobalConfig(path))
	assert.Equal(t, "yaml", config.GetOutputFormat(""))
	assert.Equal(t, "json", config.GetOutputFormat("JSON"))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)

	lc.File = "/tmp/pagenav/app.log"
	out := lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/pagenav/app.log", out.File)
	assert.Equal(t, "warn", out.Level)
}
