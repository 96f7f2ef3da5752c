// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/blogem/useradmin/models"
)

// Config holds all configuration for the application.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DatabasePath    string `mapstructure:"DATABASE_PATH"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	LogFormat       string `mapstructure:"LOG_FORMAT"`
	UseHTTPS        bool   `mapstructure:"USE_HTTPS"`
	SessionLifetime int64  `mapstructure:"SESSION_LIFETIME"`
	LogPageSize     int    `mapstructure:"LOG_PAGE_SIZE"`
}

// Keys understood by Load
const (
	KeyPort            = "PORT"
	KeyDatabasePath    = "DATABASE_PATH"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyUseHTTPS        = "USE_HTTPS"
	KeySessionLifetime = "SESSION_LIFETIME"
	KeyLogPageSize     = "LOG_PAGE_SIZE"
)

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyDatabasePath, "useradmin.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyUseHTTPS, false)
	v.SetDefault(KeySessionLifetime, 3600)
	v.SetDefault(KeyLogPageSize, models.DefaultLogPageSize)
}

// Load reads the given .env files (".env" when none are named) into the process
// environment, then resolves every key from flags bound on v, the environment and
// the defaults. A missing .env file is not an error.
func Load(v *viper.Viper, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if cfg.LogPageSize < 1 {
		errs = append(errs, fmt.Errorf("LOG_PAGE_SIZE must be positive, got %d", cfg.LogPageSize))
	}
	if cfg.SessionLifetime < 1 {
		errs = append(errs, fmt.Errorf("SESSION_LIFETIME must be positive, got %d", cfg.SessionLifetime))
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat))
	}

	return errors.Join(errs...)
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", name)
	}
	return level, nil
}
