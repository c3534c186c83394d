package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "*.xml", cfg.Analysis.Pattern)
	assert.False(t, cfg.Analysis.Recursive)
	assert.Equal(t, "_analysis", cfg.Analysis.Suffix)
	assert.Equal(t, "*_analysis.csv", cfg.Consolidate.Pattern)
	assert.Equal(t, "tracking_summary.csv", cfg.Consolidate.CSVName)
	assert.Equal(t, "tracking_summary.xlsx", cfg.Consolidate.XLSXName)
	assert.False(t, cfg.Consolidate.MakeXLSX)
	assert.Equal(t, []string{
		"total_tracks",
		"total_merges",
		"avg_speed_all",
		"avg_speed_merging",
		"avg_speed_nonmerge",
	}, cfg.Consolidate.Columns)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		check  func(t *testing.T, cfg *Config)
	}{
		{
			name:   "logging level",
			envVar: "SGMITO_LOGGING_LEVEL",
			value:  "debug",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name:   "logging output",
			envVar: "SGMITO_LOGGING_OUTPUT",
			value:  "both",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "both", cfg.Logging.Output)
			},
		},
		{
			name:   "analysis pattern",
			envVar: "SGMITO_ANALYSIS_PATTERN",
			value:  "Experiment*.xml",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Experiment*.xml", cfg.Analysis.Pattern)
			},
		},
		{
			name:   "analysis recursive",
			envVar: "SGMITO_ANALYSIS_RECURSIVE",
			value:  "true",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Analysis.Recursive)
			},
		},
		{
			name:   "consolidate columns",
			envVar: "SGMITO_CONSOLIDATE_COLUMNS",
			value:  "total_tracks,avg_speed_all",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"total_tracks", "avg_speed_all"}, cfg.Consolidate.Columns)
			},
		},
		{
			name:   "consolidate xlsx flag",
			envVar: "SGMITO_CONSOLIDATE_MAKE_XLSX",
			value:  "true",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Consolidate.MakeXLSX)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			inTempDir(t)
			t.Setenv(tt.envVar, tt.value)

			cfg, err := Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	cleanEnv(t)
	dir := inTempDir(t)

	content := `logging:
  level: warn
  output: file
  file_path: logs/custom.log
analysis:
  pattern: "Track*.xml"
  recursive: true
  suffix: _tracks
consolidate:
  pattern: "*_tracks.csv"
  csv_name: all_tracks.csv
  xlsx_name: all_tracks.xlsx
  make_xlsx: true
  columns:
    - total_tracks
    - total_merges
`
	err := os.WriteFile(filepath.Join(dir, "tracking.yaml"), []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "logs/custom.log", cfg.Logging.FilePath)
	assert.Equal(t, "Track*.xml", cfg.Analysis.Pattern)
	assert.True(t, cfg.Analysis.Recursive)
	assert.Equal(t, "_tracks", cfg.Analysis.Suffix)
	assert.Equal(t, "*_tracks.csv", cfg.Consolidate.Pattern)
	assert.Equal(t, "all_tracks.csv", cfg.Consolidate.CSVName)
	assert.True(t, cfg.Consolidate.MakeXLSX)
	assert.Equal(t, []string{"total_tracks", "total_merges"}, cfg.Consolidate.Columns)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cleanEnv(t)
	dir := inTempDir(t)

	content := `logging:
  level: warn
`
	err := os.WriteFile(filepath.Join(dir, "tracking.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	t.Setenv("SGMITO_LOGGING_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{
			name:   "bad logging level",
			envVar: "SGMITO_LOGGING_LEVEL",
			value:  "verbose",
		},
		{
			name:   "bad logging output",
			envVar: "SGMITO_LOGGING_OUTPUT",
			value:  "syslog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			inTempDir(t)
			t.Setenv(tt.envVar, tt.value)

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	cleanEnv(t)
	dir := inTempDir(t)

	err := os.WriteFile(filepath.Join(dir, "tracking.yaml"), []byte("logging: [not: a: map"), 0644)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestValidate_ForcesJSONFormat(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/tracking.log",
		},
		Analysis: AnalysisConfig{
			Pattern: "*.xml",
			Suffix:  "_analysis",
		},
		Consolidate: ConsolidateConfig{
			Pattern:  "*_analysis.csv",
			Columns:  []string{"total_tracks"},
			CSVName:  "tracking_summary.csv",
			XLSXName: "tracking_summary.xlsx",
		},
	}

	err := cfg.validate()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// cleanEnv removes all SGMITO_ variables the tests may set so cases
// don't leak into each other
func cleanEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"SGMITO_LOGGING_LEVEL",
		"SGMITO_LOGGING_FORMAT",
		"SGMITO_LOGGING_OUTPUT",
		"SGMITO_LOGGING_FILE_PATH",
		"SGMITO_ANALYSIS_PATTERN",
		"SGMITO_ANALYSIS_RECURSIVE",
		"SGMITO_ANALYSIS_SUFFIX",
		"SGMITO_CONSOLIDATE_PATTERN",
		"SGMITO_CONSOLIDATE_COLUMNS",
		"SGMITO_CONSOLIDATE_CSV_NAME",
		"SGMITO_CONSOLIDATE_XLSX_NAME",
		"SGMITO_CONSOLIDATE_MAKE_XLSX",
	}
	for _, v := range vars {
		if val, ok := os.LookupEnv(v); ok {
			t.Setenv(v, val)
			os.Unsetenv(v)
		}
	}
}

// inTempDir switches the working directory to a fresh temp dir so
// config file discovery never picks up a developer's local file
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(orig)
	})
	return dir
}
