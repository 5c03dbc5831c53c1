// Package config provides configuration management using Viper
package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Environment types
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// LogLevel represents the logging level for the application
type LogLevel string

// Available log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Application settings
	AppName     string   `mapstructure:"appname"`
	AppPort     string   `mapstructure:"appport"`
	Environment string   `mapstructure:"environment"`
	LogLevel    LogLevel `mapstructure:"loglevel"`

	// File paths
	StoragePath   string `mapstructure:"storagepath"`
	ReportPath    string `mapstructure:"reportpath"`
	DashboardPath string `mapstructure:"dashboardpath"`

	// Logging settings
	LogsDirectory    string `mapstructure:"logsdir"`
	LogsMaxSizeInMb  int    `mapstructure:"logsmaxsizeinmb"`
	LogsMaxBackups   int    `mapstructure:"logsmaxbackups"`
	LogsMaxAgeInDays int    `mapstructure:"logsmaxageindays"`

	// Sample data generation settings
	GeneratorDays int   `mapstructure:"generatordays"`
	GeneratorSeed int64 `mapstructure:"generatorseed"`

	// Trend analysis settings
	TrendWindowDays int `mapstructure:"trendwindowdays"`
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	once.Do(func() {
		v := viper.New()

		// Set defaults
		v.SetDefault("appname", "trafficlens")
		v.SetDefault("appport", "3000")
		v.SetDefault("environment", Development)
		v.SetDefault("loglevel", string(LogLevelDebug))
		v.SetDefault("storagepath", "storage")
		v.SetDefault("reportpath", "")
		v.SetDefault("dashboardpath", "")
		v.SetDefault("logsdir", "logs")
		v.SetDefault("logsmaxsizeinmb", 20)
		v.SetDefault("logsmaxbackups", 10)
		v.SetDefault("logsmaxageindays", 30)
		v.SetDefault("generatordays", 30)
		v.SetDefault("generatorseed", 42)
		v.SetDefault("trendwindowdays", 7)

		// Bind environment variables
		v.BindEnv("appname", "TRAFFICLENS_APP_NAME")
		v.BindEnv("appport", "TRAFFICLENS_APP_PORT")
		v.BindEnv("environment", "TRAFFICLENS_ENV")
		v.BindEnv("loglevel", "TRAFFICLENS_LOG_LEVEL")
		v.BindEnv("storagepath", "TRAFFICLENS_STORAGE_PATH")
		v.BindEnv("reportpath", "TRAFFICLENS_REPORT_PATH")
		v.BindEnv("dashboardpath", "TRAFFICLENS_DASHBOARD_PATH")
		v.BindEnv("logsdir", "TRAFFICLENS_LOGS_DIR")
		v.BindEnv("logsmaxsizeinmb", "TRAFFICLENS_LOGS_MAX_SIZE_IN_MB")
		v.BindEnv("logsmaxbackups", "TRAFFICLENS_LOGS_MAX_BACKUPS")
		v.BindEnv("logsmaxageindays", "TRAFFICLENS_LOGS_MAX_AGE_IN_DAYS")
		v.BindEnv("generatordays", "TRAFFICLENS_GENERATOR_DAYS")
		v.BindEnv("generatorseed", "TRAFFICLENS_GENERATOR_SEED")
		v.BindEnv("trendwindowdays", "TRAFFICLENS_TREND_WINDOW_DAYS")

		cfg = &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("config: failed to unmarshal configuration: %v", err)
		}

		// Validate
		if err := cfg.validate(); err != nil {
			log.Fatalf("config: invalid configuration: %v", err)
		}
	})
	return cfg
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	validEnvs := map[string]bool{
		Development: true,
		Production:  true,
		Test:        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.TrendWindowDays < 1 {
		return fmt.Errorf("trend window must be at least 1 day, got %d", c.TrendWindowDays)
	}

	return nil
}

// GetReportPath returns the JSON report output path, defaulting into the storage directory
func (c *Config) GetReportPath() string {
	if c.ReportPath == "" {
		return filepath.Join(c.StoragePath, "analytics_report.json")
	}
	return c.ReportPath
}

// GetDashboardPath returns the HTML dashboard output path, defaulting into the storage directory
func (c *Config) GetDashboardPath() string {
	if c.DashboardPath == "" {
		return filepath.Join(c.StoragePath, "dashboard.html")
	}
	return c.DashboardPath
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsTest returns true if the environment is test
func (c *Config) IsTest() bool {
	return c.Environment == Test
}

// GetPort returns the HTTP server port
func (c *Config) GetPort() string {
	return c.AppPort
}

// GetLogLevel returns the log level as a string
func (c *Config) GetLogLevel() string {
	return string(c.LogLevel)
}

// Reset clears the cached configuration; intended for tests.
func Reset() {
	once = sync.Once{}
	cfg = nil
}
