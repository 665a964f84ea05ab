// Package config provides configuration management for the journal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Sync    SyncConfig    `mapstructure:"sync"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	// Loaded separately from credentials.toml; never serialized, so
	// config dumps cannot leak the api key.
	Credentials Credentials `mapstructure:"-" json:"-"`
}

// StorageConfig holds local persistence configuration.
type StorageConfig struct {
	// Path is the sqlite database file backing the document store.
	Path string `mapstructure:"path"`
}

// SyncConfig holds remote mirror configuration. The endpoint performs
// upsert-by-id; the api key lives in credentials.toml.
type SyncConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the sync request timeout as a duration.
func (s SyncConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// UIConfig holds CLI output configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	RecentTrades int    `mapstructure:"recent_trades"`
}

// LoggingConfig holds diagnostic logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Credentials holds the sync endpoint's api key.
type Credentials struct {
	Sync SyncCredentials `mapstructure:"sync"`
}

// SyncCredentials holds the static key sent as both the apikey header and
// the bearer token.
type SyncCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/confluence-journal"
	}
	return filepath.Join(home, ".config", "confluence-journal")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. Missing files get template
// stand-ins written and the built-in defaults applied; the journal must
// start on a fresh machine without ceremony.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}
	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyDefaults(cfg, configDir)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("sync.enabled", false)
	v.SetDefault("sync.timeout_seconds", 10)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.recent_trades", 8)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: write a template, continue on defaults.
			if werr := createTemplateConfig(configDir); werr != nil {
				return werr
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(configDir, "journal.db")
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = filepath.Join(configDir, "logs", "journal.log")
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JOURNAL_SYNC_URL"); v != "" {
		cfg.Sync.URL = v
		cfg.Sync.Enabled = true
	}
	if v := os.Getenv("JOURNAL_SYNC_API_KEY"); v != "" {
		cfg.Credentials.Sync.APIKey = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	if c.Sync.Enabled && c.Sync.URL == "" {
		return fmt.Errorf("sync is enabled but sync.url is empty")
	}
	if c.Sync.TimeoutSeconds < 0 {
		return fmt.Errorf("sync.timeout_seconds must be non-negative")
	}
	if c.UI.RecentTrades < 0 {
		return fmt.Errorf("ui.recent_trades must be non-negative")
	}

	return nil
}

// SyncReady reports whether the remote mirror can be constructed.
func (c *Config) SyncReady() bool {
	return c.Sync.Enabled && c.Sync.URL != "" && c.Credentials.Sync.APIKey != ""
}
