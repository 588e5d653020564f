package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"univar/internal"
	"univar/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
	Chart    ChartConfig
	Session  SessionConfig
	Logging  LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig bounds what a browser may send
type UploadConfig struct {
	MaxMB int
}

// MaxBytes is the upload limit in bytes
func (u UploadConfig) MaxBytes() int64 {
	return int64(u.MaxMB) << 20
}

// AnalysisConfig holds the bin-count control settings
type AnalysisConfig struct {
	DefaultBins int
	MaxBins     int
}

// ClampBins keeps a requested bin count inside [1, MaxBins]
func (a AnalysisConfig) ClampBins(bins int) int {
	if bins < 1 {
		return 1
	}
	if bins > a.MaxBins {
		return a.MaxBins
	}
	return bins
}

// ParseBins reads a bin count from a form value. Blank or non-integer
// input gives DefaultBins; anything else is clamped.
func (a AnalysisConfig) ParseBins(raw string) int {
	bins, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return a.DefaultBins
	}
	return a.ClampBins(bins)
}

// ChartConfig holds rendered chart dimensions in pixels
type ChartConfig struct {
	Width  int
	Height int
}

// SessionConfig controls how long an uploaded dataset is kept
type SessionConfig struct {
	TTL time.Duration
}

// LoggingConfig holds the log verbosity
type LoggingConfig struct {
	Level internal.LogLevel
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "release"},
		Upload:   UploadConfig{MaxMB: 50},
		Analysis: AnalysisConfig{DefaultBins: 10, MaxBins: 50},
		Chart:    ChartConfig{Width: 640, Height: 400},
		Session:  SessionConfig{TTL: 2 * time.Hour},
		Logging:  LoggingConfig{Level: internal.LogLevelInfo},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	def := Default()
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", def.Server.Port),
			GinMode: getEnvOrDefault("GIN_MODE", def.Server.GinMode),
		},
		Upload: UploadConfig{
			MaxMB: getEnvIntOrDefault("MAX_UPLOAD_MB", def.Upload.MaxMB),
		},
		Analysis: AnalysisConfig{
			DefaultBins: getEnvIntOrDefault("DEFAULT_BINS", def.Analysis.DefaultBins),
			MaxBins:     getEnvIntOrDefault("MAX_BINS", def.Analysis.MaxBins),
		},
		Chart: ChartConfig{
			Width:  getEnvIntOrDefault("CHART_WIDTH", def.Chart.Width),
			Height: getEnvIntOrDefault("CHART_HEIGHT", def.Chart.Height),
		},
		Session: SessionConfig{
			TTL: getEnvDurationOrDefault("SESSION_TTL", def.Session.TTL),
		},
		Logging: LoggingConfig{Level: def.Logging.Level},
	}

	if name := os.Getenv("LOG_LEVEL"); name != "" {
		level, ok := internal.ParseLogLevel(name)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("unknown LOG_LEVEL %q", name))
		}
		config.Logging.Level = level
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("GIN_MODE must be debug, release or test, got %q", config.Server.GinMode))
	}
	if config.Upload.MaxMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Analysis.MaxBins < 1 {
		return errors.ConfigInvalid("MAX_BINS must be at least 1")
	}
	if config.Analysis.DefaultBins < 1 || config.Analysis.DefaultBins > config.Analysis.MaxBins {
		return errors.ConfigInvalid(fmt.Sprintf("DEFAULT_BINS must be between 1 and %d", config.Analysis.MaxBins))
	}
	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Session.TTL <= 0 {
		return errors.ConfigInvalid("SESSION_TTL must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
