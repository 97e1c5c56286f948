package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all CLI configuration.
type Config struct {
	Naming NamingConfig `mapstructure:"naming"`
	Deploy DeployConfig `mapstructure:"deploy"`
	AWS    AWSConfig    `mapstructure:"aws"`
	Log    LogConfig    `mapstructure:"log"`
}

// NamingConfig holds naming convention configuration.
type NamingConfig struct {
	// DNSPrefix is the globally unique prefix used in bucket names.
	DNSPrefix string `mapstructure:"dns_prefix"`
}

// DeployConfig holds deployment metadata configuration.
type DeployConfig struct {
	// DeployedBy is the actor recorded in tags; empty means the default.
	DeployedBy string `mapstructure:"deployed_by"`

	// Version is the application version recorded in tags.
	Version string `mapstructure:"version"`
}

// AWSConfig holds credentials for the optional preflight.
// Set via APPINFRA_AWS_ACCESS_KEY_ID / APPINFRA_AWS_SECRET_ACCESS_KEY.
type AWSConfig struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("naming.dns_prefix", "thirdopinion.io")
	v.SetDefault("deploy.deployed_by", "")
	v.SetDefault("deploy.version", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	v.SetEnvPrefix("APPINFRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
// Logs go to stderr so the synthesis preview on stdout stays parseable.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
