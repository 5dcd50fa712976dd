// Package config provides configuration management for the application.
// Values are resolved from a YAML config file, environment variables, and
// defaults, in that order of precedence, using viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Logger   logger.Config  `yaml:"logger"`
	Database DatabaseConfig `yaml:"database"`
	Browser  BrowserConfig  `yaml:"browser"`
	Refresh  RefreshConfig  `yaml:"refresh"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// BrowserConfig holds headless browser configuration.
type BrowserConfig struct {
	Headless       bool          `yaml:"headless"`
	UserAgent      string        `yaml:"user_agent"`
	ViewportWidth  int           `yaml:"viewport_width"`
	ViewportHeight int           `yaml:"viewport_height"`
	NavTimeout     time.Duration `yaml:"nav_timeout"`
}

// RefreshConfig holds refresh pipeline configuration.
type RefreshConfig struct {
	// BaseURL is the root of the roster/recruiting site.
	BaseURL string `yaml:"base_url"`
	// Season is the season path segment used in listing URLs.
	Season string `yaml:"season"`
	// ManifestDir is where failure manifests are written.
	ManifestDir string `yaml:"manifest_dir"`
	// Schedule is the cron expression for scheduled update runs.
	Schedule string `yaml:"schedule"`
}

// Default configuration values.
const (
	defaultEnvironment    = "development"
	defaultLogLevel       = "info"
	defaultLogEncoding    = "console"
	defaultDBHost         = "localhost"
	defaultDBPort         = "5432"
	defaultDBUser         = "postgres"
	defaultDBName         = "rosterwatch"
	defaultDBSSLMode      = "disable"
	defaultHeadless       = true
	defaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
	defaultNavTimeout     = 30 * time.Second
	defaultBaseURL        = "https://247sports.com"
	defaultSeason         = "2024-basketball"
	defaultManifestDir    = "."
	defaultSchedule       = "0 3 * * *"
)

// SetDefaults registers default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("app.environment", defaultEnvironment)
	viper.SetDefault("app.debug", false)
	viper.SetDefault("logger.level", defaultLogLevel)
	viper.SetDefault("logger.encoding", defaultLogEncoding)
	viper.SetDefault("logger.development", false)
	viper.SetDefault("database.host", defaultDBHost)
	viper.SetDefault("database.port", defaultDBPort)
	viper.SetDefault("database.user", defaultDBUser)
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", defaultDBName)
	viper.SetDefault("database.sslmode", defaultDBSSLMode)
	viper.SetDefault("browser.headless", defaultHeadless)
	viper.SetDefault("browser.user_agent", defaultUserAgent)
	viper.SetDefault("browser.viewport_width", defaultViewportWidth)
	viper.SetDefault("browser.viewport_height", defaultViewportHeight)
	viper.SetDefault("browser.nav_timeout", defaultNavTimeout)
	viper.SetDefault("refresh.base_url", defaultBaseURL)
	viper.SetDefault("refresh.season", defaultSeason)
	viper.SetDefault("refresh.manifest_dir", defaultManifestDir)
	viper.SetDefault("refresh.schedule", defaultSchedule)
}

// Load builds a Config from the current viper state.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Logger: logger.Config{
			Level:       viper.GetString("logger.level"),
			Development: viper.GetBool("logger.development"),
			Encoding:    viper.GetString("logger.encoding"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("database.host"),
			Port:     viper.GetString("database.port"),
			User:     viper.GetString("database.user"),
			Password: viper.GetString("database.password"),
			DBName:   viper.GetString("database.dbname"),
			SSLMode:  viper.GetString("database.sslmode"),
		},
		Browser: BrowserConfig{
			Headless:       viper.GetBool("browser.headless"),
			UserAgent:      viper.GetString("browser.user_agent"),
			ViewportWidth:  viper.GetInt("browser.viewport_width"),
			ViewportHeight: viper.GetInt("browser.viewport_height"),
			NavTimeout:     viper.GetDuration("browser.nav_timeout"),
		},
		Refresh: RefreshConfig{
			BaseURL:     viper.GetString("refresh.base_url"),
			Season:      viper.GetString("refresh.season"),
			ManifestDir: viper.GetString("refresh.manifest_dir"),
			Schedule:    viper.GetString("refresh.schedule"),
		},
	}

	// Debug mode implies development logging at debug level.
	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
		cfg.Logger.Development = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database: %w", ErrMissingHost)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database: %w", ErrMissingDBName)
	}
	if c.Refresh.BaseURL == "" {
		return fmt.Errorf("refresh: %w", ErrMissingBaseURL)
	}
	if c.Refresh.Season == "" {
		return fmt.Errorf("refresh: %w", ErrMissingSeason)
	}
	if c.Browser.NavTimeout <= 0 {
		return fmt.Errorf("browser: %w", ErrInvalidNavTimeout)
	}
	return nil
}
