// Package config provides configuration for the warehouse pipeline commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"salesdw/internal/models"
)

// Configuration validation errors.
var (
	ErrMissingSQLRawDir     = errors.New("sources.sql_raw_dir is required")
	ErrMissingAccessRawDir  = errors.New("sources.access_raw_dir is required")
	ErrMissingProcessedDir  = errors.New("sources.access_processed_dir is required")
	ErrMissingWarehouseDir  = errors.New("output.warehouse_dir is required")
	ErrEmptyMergePriority   = errors.New("merge.priority must list at least one source")
	ErrUnknownMergeSource   = errors.New("merge.priority contains an unknown source tag")
	ErrDuplicateMergeSource = errors.New("merge.priority lists a source twice")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete pipeline configuration. All paths are explicit;
// components never read locations from the environment.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Merge   MergeConfig   `yaml:"merge"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig locates the per-source input directories.
type SourcesConfig struct {
	// SQLRawDir holds the relational export (Customers.csv, Employees.csv,
	// Orders.csv, Order Details.csv).
	SQLRawDir string `yaml:"sql_raw_dir"`
	// AccessRawDir holds the raw desktop-database export consumed by the
	// transform command, plus its Order Details file.
	AccessRawDir string `yaml:"access_raw_dir"`
	// AccessProcessedDir holds the canonical *_norm.csv files the transform
	// command produces and the warehouse command consumes.
	AccessProcessedDir string `yaml:"access_processed_dir"`
}

// OutputConfig locates the persisted warehouse tables.
type OutputConfig struct {
	WarehouseDir string `yaml:"warehouse_dir"`
	// KPIDir defaults to <warehouse_dir>/kpi_summaries.
	KPIDir string `yaml:"kpi_dir"`
}

// MergeConfig controls cross-source deduplication.
type MergeConfig struct {
	// Priority lists source tags from lowest to highest precedence. When two
	// sources collide on a match key, the later-listed source supplies the
	// surviving dimension attributes.
	Priority []string `yaml:"priority"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads, defaults, and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given:
// the conventional data/ tree relative to the working directory.
func Default() *Config {
	cfg := &Config{
		Sources: SourcesConfig{
			SQLRawDir:          filepath.Join("data", "raw", "sql"),
			AccessRawDir:       filepath.Join("data", "raw", "access"),
			AccessProcessedDir: filepath.Join("data", "processed", "access"),
		},
		Output: OutputConfig{
			WarehouseDir: filepath.Join("data", "warehouse"),
		},
	}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.Merge.Priority) == 0 {
		// The relational export is listed last: it wins merge ties.
		c.Merge.Priority = []string{models.SourceAccess, models.SourceSQL}
	}

	if c.Output.KPIDir == "" && c.Output.WarehouseDir != "" {
		c.Output.KPIDir = filepath.Join(c.Output.WarehouseDir, "kpi_summaries")
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if c.Sources.SQLRawDir == "" {
		return ErrMissingSQLRawDir
	}

	if c.Sources.AccessRawDir == "" {
		return ErrMissingAccessRawDir
	}

	if c.Sources.AccessProcessedDir == "" {
		return ErrMissingProcessedDir
	}

	if c.Output.WarehouseDir == "" {
		return ErrMissingWarehouseDir
	}

	if len(c.Merge.Priority) == 0 {
		return ErrEmptyMergePriority
	}

	seen := make(map[string]bool, len(c.Merge.Priority))

	for i, tag := range c.Merge.Priority {
		if tag != models.SourceSQL && tag != models.SourceAccess {
			return fmt.Errorf("%w: priority[%d]=%q", ErrUnknownMergeSource, i, tag)
		}

		if seen[tag] {
			return fmt.Errorf("%w: %q", ErrDuplicateMergeSource, tag)
		}

		seen[tag] = true
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}
