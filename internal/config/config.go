package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cmms/internal/assets"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the workspace-relative location of the config file.
const DefaultPath = ".cmms/config.yaml"

// Config holds all cmms configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Asset data source
	Data DataConfig `yaml:"data"`

	// Category selector
	Categories CategoriesConfig `yaml:"categories"`

	// Dashboard presentation
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig selects and configures the asset repository.
type DataConfig struct {
	Source   string `yaml:"source"`   // memory, file, sqlite
	Path     string `yaml:"path"`     // seed file or database path
	Driver   string `yaml:"driver"`   // sqlite (modernc) or sqlite3 (mattn)
	Watch    bool   `yaml:"watch"`    // reload the seed file when it changes
	Debounce string `yaml:"debounce"` // watcher debounce, e.g. "250ms"
}

// CategoriesConfig configures the category selector.
type CategoriesConfig struct {
	Mode    assets.CategoryMode     `yaml:"mode"` // fixed, derived
	Options []assets.CategoryOption `yaml:"options"`
}

// Known data sources.
const (
	SourceMemory = "memory"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// ValidSources lists every supported data source.
var ValidSources = []string{SourceMemory, SourceFile, SourceSQLite}

// ValidDrivers lists the database/sql driver names the sqlite source accepts.
var ValidDrivers = []string{"sqlite", "sqlite3"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "cmms",
		Version: "0.3.0",

		Data: DataConfig{
			Source:   SourceMemory,
			Path:     "",
			Driver:   "sqlite",
			Watch:    false,
			Debounce: "250ms",
		},

		Categories: CategoriesConfig{
			Mode:    assets.CategoryModeDerived,
			Options: assets.DefaultCategoryOptions(),
		},

		UI: *DefaultUIConfig(),

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CMMS_DATA_SOURCE"); v != "" {
		c.Data.Source = v
	}
	if v := os.Getenv("CMMS_DATA_PATH"); v != "" {
		c.Data.Path = v
	}
	if v := os.Getenv("CMMS_DB_DRIVER"); v != "" {
		c.Data.Driver = v
	}
	if os.Getenv("CMMS_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if os.Getenv("CMMS_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// GetDebounce returns the watcher debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Data.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error

	if !contains(ValidSources, c.Data.Source) {
		errs = append(errs, fmt.Errorf("invalid data source: %q (valid: %v)", c.Data.Source, ValidSources))
	}
	if c.Data.Source != SourceMemory && strings.TrimSpace(c.Data.Path) == "" {
		errs = append(errs, fmt.Errorf("data source %q requires data.path", c.Data.Source))
	}
	if c.Data.Source == SourceSQLite && !contains(ValidDrivers, c.Data.Driver) {
		errs = append(errs, fmt.Errorf("invalid sqlite driver: %q (valid: %v)", c.Data.Driver, ValidDrivers))
	}
	if c.Data.Watch && c.Data.Source != SourceFile {
		errs = append(errs, fmt.Errorf("data.watch is only supported for the %q source", SourceFile))
	}

	switch c.Categories.Mode {
	case assets.CategoryModeFixed, assets.CategoryModeDerived:
	default:
		errs = append(errs, fmt.Errorf("invalid categories.mode: %q (valid: fixed, derived)", c.Categories.Mode))
	}

	if err := c.UI.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
