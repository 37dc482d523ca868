// Package config provides Viper-based configuration management for epitrend
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/timeseries"
)

// Config represents the complete epitrend configuration
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	CSV      CSVConfig      `mapstructure:"csv"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   OutputConfig   `mapstructure:"output"`
}

// AnalysisConfig contains the tunables of the series operators
type AnalysisConfig struct {
	SmoothWindow       int     `mapstructure:"smooth_window"`
	RegressionWindow   int     `mapstructure:"regression_window"`
	TrendMinPoints     int     `mapstructure:"trend_min_points"`
	MaxDoublingPeriods float64 `mapstructure:"max_doubling_periods"`
}

// CacheConfig contains region cache settings. A zero TTL disables caching.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CSVConfig contains the column layout of CSV region files
type CSVConfig struct {
	DateColumn      string `mapstructure:"date_column"`
	ConfirmedColumn string `mapstructure:"confirmed_column"`
	DeathsColumn    string `mapstructure:"deaths_column"`
	RecoveredColumn string `mapstructure:"recovered_column"`
	DateFormat      string `mapstructure:"date_format"`
	Delimiter       string `mapstructure:"delimiter"`
	SkipRows        int    `mapstructure:"skip_rows"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Colors bool   `mapstructure:"colors"`
}

// EPITREND_ANALYSIS_SMOOTH_WINDOW overrides analysis.smooth_window.
var envKeyReplacer = strings.NewReplacer(".", "_")

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".epitrend")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/epitrend")
	}

	v.SetEnvPrefix("EPITREND")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	defaults := timeseries.DefaultOptions()
	v.SetDefault("analysis.smooth_window", defaults.SmoothWindow)
	v.SetDefault("analysis.regression_window", defaults.RegressionWindow)
	v.SetDefault("analysis.trend_min_points", defaults.TrendMinPoints)
	v.SetDefault("analysis.max_doubling_periods", defaults.MaxDoublingPeriods)

	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)

	csv := dataset.DefaultCSVOptions()
	v.SetDefault("csv.date_column", csv.DateColumn)
	v.SetDefault("csv.confirmed_column", csv.ConfirmedColumn)
	v.SetDefault("csv.deaths_column", csv.DeathsColumn)
	v.SetDefault("csv.recovered_column", csv.RecoveredColumn)
	v.SetDefault("csv.date_format", csv.DateFormat)
	v.SetDefault("csv.delimiter", string(csv.Delimiter))
	v.SetDefault("csv.skip_rows", csv.SkipRows)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.format", "table")
	v.SetDefault("output.colors", true)
}

// validate checks configuration for errors
func validate(cfg *Config) error {
	if err := cfg.AnalysisOptions().Validate(); err != nil {
		return err
	}

	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative: %s", cfg.Cache.TTL)
	}

	if cfg.CSV.DateColumn == "" || cfg.CSV.ConfirmedColumn == "" {
		return fmt.Errorf("csv.date_column and csv.confirmed_column must be set")
	}
	if utf8.RuneCountInString(cfg.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character: %q", cfg.CSV.Delimiter)
	}
	if cfg.CSV.SkipRows < 0 {
		return fmt.Errorf("csv.skip_rows must not be negative: %d", cfg.CSV.SkipRows)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q: must be debug, info, warn, or error", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q: must be text or json", cfg.Logging.Format)
	}

	switch cfg.Output.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output.format %q: must be table, json, or yaml", cfg.Output.Format)
	}

	return nil
}

// AnalysisOptions converts the analysis section into series options
func (c *Config) AnalysisOptions() *timeseries.Options {
	return &timeseries.Options{
		SmoothWindow:       c.Analysis.SmoothWindow,
		RegressionWindow:   c.Analysis.RegressionWindow,
		TrendMinPoints:     c.Analysis.TrendMinPoints,
		MaxDoublingPeriods: c.Analysis.MaxDoublingPeriods,
	}
}

// CSVOptions converts the csv section into loader options
func (c *Config) CSVOptions() *dataset.CSVOptions {
	delimiter, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return &dataset.CSVOptions{
		DateColumn:      c.CSV.DateColumn,
		ConfirmedColumn: c.CSV.ConfirmedColumn,
		DeathsColumn:    c.CSV.DeathsColumn,
		RecoveredColumn: c.CSV.RecoveredColumn,
		DateFormat:      c.CSV.DateFormat,
		Delimiter:       delimiter,
		SkipRows:        c.CSV.SkipRows,
	}
}
