package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trafficlens/internal/config"
)

func TestConfigDefaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	cfg := config.GetConfig()

	assert.Equal(t, "trafficlens", cfg.AppName)
	assert.Equal(t, "3000", cfg.GetPort())
	assert.Equal(t, config.Development, cfg.Environment)
	assert.Equal(t, 30, cfg.GeneratorDays)
	assert.Equal(t, int64(42), cfg.GeneratorSeed)
	assert.Equal(t, 7, cfg.TrendWindowDays)
	assert.Equal(t, "storage/analytics_report.json", cfg.GetReportPath())
	assert.Equal(t, "storage/dashboard.html", cfg.GetDashboardPath())
}

func TestConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRAFFICLENS_APP_PORT", "4000")
	t.Setenv("TRAFFICLENS_ENV", config.Test)
	t.Setenv("TRAFFICLENS_TREND_WINDOW_DAYS", "14")
	t.Setenv("TRAFFICLENS_REPORT_PATH", "/tmp/out.json")

	config.Reset()
	t.Cleanup(config.Reset)

	cfg := config.GetConfig()

	assert.Equal(t, "4000", cfg.GetPort())
	assert.True(t, cfg.IsTest())
	assert.Equal(t, 14, cfg.TrendWindowDays)
	assert.Equal(t, "/tmp/out.json", cfg.GetReportPath())
}
