package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/rosterwatch/internal/config"
)

// Load reads the global viper instance, so these tests reset it and run
// sequentially.

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "rosterwatch", cfg.Database.DBName)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 30*time.Second, cfg.Browser.NavTimeout)
	assert.Equal(t, "https://247sports.com", cfg.Refresh.BaseURL)
	assert.Equal(t, "2024-basketball", cfg.Refresh.Season)
	assert.Equal(t, "0 3 * * *", cfg.Refresh.Schedule)
}

func TestLoadDebugImpliesDevelopmentLogging(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()
	viper.Set("app.debug", true)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.Development)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()
	viper.Set("database.host", "db.internal")
	viper.Set("refresh.season", "2025-basketball")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "2025-basketball", cfg.Refresh.Season)
}

func TestValidate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()

	base, err := config.Load()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "missing database host",
			mutate:  func(c *config.Config) { c.Database.Host = "" },
			wantErr: config.ErrMissingHost,
		},
		{
			name:    "missing database name",
			mutate:  func(c *config.Config) { c.Database.DBName = "" },
			wantErr: config.ErrMissingDBName,
		},
		{
			name:    "missing base url",
			mutate:  func(c *config.Config) { c.Refresh.BaseURL = "" },
			wantErr: config.ErrMissingBaseURL,
		},
		{
			name:    "missing season",
			mutate:  func(c *config.Config) { c.Refresh.Season = "" },
			wantErr: config.ErrMissingSeason,
		},
		{
			name:    "invalid nav timeout",
			mutate:  func(c *config.Config) { c.Browser.NavTimeout = 0 },
			wantErr: config.ErrInvalidNavTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
