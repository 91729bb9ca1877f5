package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "warehouse.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

const validConfigYAML = `
sources:
  sql_raw_dir: data/raw/sql
  access_raw_dir: data/raw/access
  access_processed_dir: data/processed/access
output:
  warehouse_dir: data/warehouse
merge:
  priority:
    - access
    - sql
logging:
  level: debug
`

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(createTempConfigFile(t, validConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Sources.SQLRawDir != "data/raw/sql" {
		t.Errorf("SQLRawDir = %q", cfg.Sources.SQLRawDir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}

	// KPI dir defaults next to the warehouse.
	if cfg.Output.KPIDir != filepath.Join("data/warehouse", "kpi_summaries") {
		t.Errorf("KPIDir = %q", cfg.Output.KPIDir)
	}
}

func TestLoadConfig_DefaultsPriorityAndLevel(t *testing.T) {
	cfg, err := LoadConfig(createTempConfigFile(t, `
sources:
  sql_raw_dir: a
  access_raw_dir: b
  access_processed_dir: c
output:
  warehouse_dir: d
`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Merge.Priority) != 2 || cfg.Merge.Priority[1] != "sql" {
		t.Errorf("default priority = %v, want sql last (highest)", cfg.Merge.Priority)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing sql dir", func(c *Config) { c.Sources.SQLRawDir = "" }, ErrMissingSQLRawDir},
		{"missing access dir", func(c *Config) { c.Sources.AccessRawDir = "" }, ErrMissingAccessRawDir},
		{"missing processed dir", func(c *Config) { c.Sources.AccessProcessedDir = "" }, ErrMissingProcessedDir},
		{"missing warehouse dir", func(c *Config) { c.Output.WarehouseDir = "" }, ErrMissingWarehouseDir},
		{"empty priority", func(c *Config) { c.Merge.Priority = nil }, ErrEmptyMergePriority},
		{"unknown source", func(c *Config) { c.Merge.Priority = []string{"oracle"} }, ErrUnknownMergeSource},
		{"duplicate source", func(c *Config) { c.Merge.Priority = []string{"sql", "sql"} }, ErrDuplicateMergeSource},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
