// Package config loads kesu settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
)

// Default values
const (
	DefaultConfigFile  = "~/.config/kesu/config.yaml"
	DefaultLogLevel    = "warn"
	DefaultParallelism = 4
	DefaultReportTop   = 10

	maxParallelism = 64
)

// Config represents kesu configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Scan   ScanConfig   `yaml:"scan"`
	UI     UIConfig     `yaml:"ui"`
	Report ReportConfig `yaml:"report"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File, when set, receives a copy of every log record.
	File string `yaml:"file"`
}

// ScanConfig controls directory scanning.
type ScanConfig struct {
	Parallelism int  `yaml:"parallelism"`
	ShowHidden  bool `yaml:"showHidden"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor bool `yaml:"noColor"`
}

// ReportConfig controls the non-interactive report.
type ReportConfig struct {
	Top int `yaml:"top"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Scan: ScanConfig{
			Parallelism: DefaultParallelism,
			ShowHidden:  true,
		},
		Report: ReportConfig{
			Top: DefaultReportTop,
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, kesuerrors.NewConfigError("failed to read config", err).WithFile(path)
	}

	if err := Parse(data, cfg); err != nil {
		var cfgErr *kesuerrors.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, cfgErr.WithFile(path)
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg. Keys absent from data keep their
// current values in cfg.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		cfgErr := kesuerrors.NewConfigError("failed to parse config", err)
		var yerr yaml.Error
		if errors.As(err, &yerr) {
			if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
				cfgErr.WithLocation(tk.Position.Line, tk.Position.Column)
			}
			cfgErr.Base.Message = "failed to parse config: " + yerr.GetMessage()
			cfgErr.Base.Cause = nil
			cfgErr.WithContext(yerr.FormatError(false, true))
		}
		return cfgErr
	}
	return nil
}

// Validate checks that every value is within range.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return kesuerrors.NewValidationError("log.level", "debug, info, warn or error", c.Log.Level)
	}
	if c.Scan.Parallelism < 1 || c.Scan.Parallelism > maxParallelism {
		return kesuerrors.NewValidationError("scan.parallelism", fmt.Sprintf("1..%d", maxParallelism), strconv.Itoa(c.Scan.Parallelism))
	}
	if c.Report.Top < 1 {
		return kesuerrors.NewValidationError("report.top", "a positive number", strconv.Itoa(c.Report.Top))
	}
	return nil
}

// ParseLogLevel converts a level name to an slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", level)
	}
}
