package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema written by Save.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build can read.
const supportedSchema = "^1.0.0"

// Defaults for a fresh configuration.
const (
	DefaultDelta      = 3
	DefaultStartAt    = 1
	DefaultPageSize   = 20
	DefaultFormat     = "table"
	DefaultLocale     = "en"
	DefaultAddr       = ":8080"
	DefaultAPIVersion = "/v1"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"

	configDirName  = ".pagenav"
	configFileName = "config.yaml"
)

// Environment variables read by ApplyEnvOverrides.
const (
	EnvConfig    = "PAGENAV_CONFIG"
	EnvHome      = "PAGENAV_HOME"
	EnvLogLevel  = "PAGENAV_LOG_LEVEL"
	EnvLogFormat = "PAGENAV_LOG_FORMAT"
	EnvOutput    = "PAGENAV_OUTPUT"
	EnvDelta     = "PAGENAV_DELTA"
	EnvPageSize  = "PAGENAV_PAGE_SIZE"
	EnvAddr      = "PAGENAV_ADDR"
)

// Validation errors.
var (
	ErrInvalidDelta         = errors.New("pagination.delta must be between 0 and 1000")
	ErrInvalidPageSize      = errors.New("pagination.page_size must be between 1 and 1000")
	ErrInvalidStartAt       = errors.New("pagination.start_at must be >= 1")
	ErrUnsupportedSchema    = errors.New("unsupported config schema version")
	ErrUnsupportedOutputFmt = errors.New("output.default_format must be table, json or yaml")
)

// maxPageSize mirrors the limit enforced on --page-size.
const maxPageSize = 1000

// maxDelta mirrors the limit the HTTP API enforces on the delta query parameter.
const maxDelta = 1000

// Config is the pagenav configuration file.
type Config struct {
	Version    string           `yaml:"version"`
	Pagination PaginationConfig `yaml:"pagination"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`

	configPath string
}

// PaginationConfig holds defaults for pagination controls.
type PaginationConfig struct {
	Delta    int `yaml:"delta"`
	StartAt  int `yaml:"start_at"`
	PageSize int `yaml:"page_size"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Locale        string `yaml:"locale"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	APIVersion string `yaml:"api_version"`
}

// New returns a Config populated with defaults and pointing at the default path.
func New() *Config {
	return &Config{
		Version: SchemaVersion,
		Pagination: PaginationConfig{
			Delta:    DefaultDelta,
			StartAt:  DefaultStartAt,
			PageSize: DefaultPageSize,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultFormat,
			Locale:        DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Server: ServerConfig{
			Addr:       DefaultAddr,
			APIVersion: DefaultAPIVersion,
		},
		configPath: DefaultConfigPath(),
	}
}

// DefaultConfigPath returns $PAGENAV_CONFIG, $PAGENAV_HOME/config.yaml or
// ~/.pagenav/config.yaml, in that order.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Join(home, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", cfg.configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("reading config %s: %w", cfg.configPath, err)
	}

	if err = cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies PAGENAV_* environment variables onto c.
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvDelta); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelta, err)
		}
		c.Pagination.Delta = n
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.Pagination.PageSize = n
	}
	return nil
}

// Validate checks the configuration for values the rest of the program cannot use.
func (c *Config) Validate() error {
	if c.Version != "" {
		if err := checkSchemaVersion(c.Version); err != nil {
			return err
		}
	}
	if c.Pagination.Delta < 0 || c.Pagination.Delta > maxDelta {
		return ErrInvalidDelta
	}
	if c.Pagination.StartAt < 1 {
		return ErrInvalidStartAt
	}
	if c.Pagination.PageSize < 1 || c.Pagination.PageSize > maxPageSize {
		return ErrInvalidPageSize
	}
	switch strings.ToLower(c.Output.DefaultFormat) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: got %q", ErrUnsupportedOutputFmt, c.Output.DefaultFormat)
	}
	return nil
}

func checkSchemaVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, version, supportedSchema)
	}
	return nil
}

// ConfigPath returns the file the configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// EnsureLogDir creates the directory of the configured log file, if any.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(file), 0o750)
}

//nolint:gochecknoglobals // Process-wide configuration loaded once per invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// InitGlobalConfig loads path and installs it as the global configuration.
func InitGlobalConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	SetGlobalConfig(cfg)
	return nil
}

// SetGlobalConfig replaces the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the global configuration, defaulting it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// GetOutputFormat returns flagValue when set, otherwise the configured default.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return strings.ToLower(flagValue)
	}
	return strings.ToLower(GetGlobalConfig().Output.DefaultFormat)
}
