package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/trackdata"
)

// envPrefix is the prefix for all environment variable overrides,
// e.g. SGMITO_LOGGING_LEVEL=debug.
const envPrefix = "SGMITO"

// Config represents the complete application configuration.
// It is loaded once in main and passed explicitly into the pipeline;
// nothing in this package holds process-wide mutable defaults.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
	Analysis    AnalysisConfig    `yaml:"analysis" envconfig:"ANALYSIS"`
	Consolidate ConsolidateConfig `yaml:"consolidate" envconfig:"CONSOLIDATE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// AnalysisConfig configures the per-file XML analysis stage
type AnalysisConfig struct {
	Pattern   string `yaml:"pattern" envconfig:"PATTERN" validate:"required"`
	Recursive bool   `yaml:"recursive" envconfig:"RECURSIVE"`
	Suffix    string `yaml:"suffix" envconfig:"SUFFIX" validate:"required"`
}

// ConsolidateConfig configures the cross-file consolidation stage
type ConsolidateConfig struct {
	Pattern  string   `yaml:"pattern" envconfig:"PATTERN" validate:"required"`
	Columns  []string `yaml:"columns" envconfig:"COLUMNS" validate:"min=1,dive,required"`
	CSVName  string   `yaml:"csv_name" envconfig:"CSV_NAME" validate:"required"`
	XLSXName string   `yaml:"xlsx_name" envconfig:"XLSX_NAME" validate:"required"`
	MakeXLSX bool     `yaml:"make_xlsx" envconfig:"MAKE_XLSX"`
}

// defaultConfig returns the built-in configuration. Load overlays the
// config file and environment on top of it, so every field a user can
// leave unset needs a sensible value here; envconfig default tags are
// not used because Process would reapply them over file-loaded values.
func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "console",
			FilePath: filepath.Join(DefaultLogsDir, "tracking.log"),
		},
		Analysis: AnalysisConfig{
			Pattern: DefaultXMLPattern,
			Suffix:  DefaultAnalysisSuffix,
		},
		Consolidate: ConsolidateConfig{
			Pattern:  DefaultAnalysisCSVPattern,
			Columns:  trackdata.SummaryColumns(),
			CSVName:  DefaultSummaryCSVName,
			XLSXName: DefaultSummaryXLSXName,
		},
	}
}

// Load loads configuration from the optional YAML file and environment
// variables. Precedence: defaults < config file < environment.
func Load() (*Config, error) {
	cfg := defaultConfig()

	// Overlay the config file if one exists; keys the file omits keep
	// their default values
	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables override everything else. An unset variable
	// leaves the field alone.
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate normalizes and validates the configuration using struct tags
func (c *Config) validate() error {
	// Always JSON output; the log files feed downstream tooling
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}

	v := validator.New()
	if err := v.Struct(c); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}

	return nil
}

// getConfigFilePath returns the path to the config file, or "" when none
// of the candidate locations exists
func getConfigFilePath() string {
	locations := []string{
		"tracking.yaml",
		"tracking.yml",
		"config/tracking.yaml",
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
