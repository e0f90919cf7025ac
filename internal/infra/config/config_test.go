package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.HTTP.Address)
	require.Equal(t, 24, cfg.Forecast.DefaultHoursAhead)
	require.Equal(t, 72, cfg.Forecast.MaxHoursAhead)
	require.Equal(t, 5, cfg.Advisor.MaxSuggestions)
	require.Equal(t, "airaware", cfg.Metrics.Namespace)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("FORECAST_DEFAULT_HOURS_AHEAD", "12")
	t.Setenv("ADVISOR_MAX_SUGGESTIONS", "3")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 12, cfg.Forecast.DefaultHoursAhead)
	require.Equal(t, 3, cfg.Advisor.MaxSuggestions)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadRejectsInvalidHorizon(t *testing.T) {
	t.Setenv("FORECAST_DEFAULT_HOURS_AHEAD", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	data := []byte("http:\n  address: \":7000\"\nforecast:\n  defaultHoursAhead: 6\n  maxHoursAhead: 48\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.HTTP.Address)
	require.Equal(t, 6, cfg.Forecast.DefaultHoursAhead)
	require.Equal(t, 48, cfg.Forecast.MaxHoursAhead)
}
