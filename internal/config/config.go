package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported report formats.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Config is the resolved vrfit configuration.
type Config struct {
	Format string    `mapstructure:"format"`
	Output string    `mapstructure:"output"`
	Log    LogConfig `mapstructure:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// configName is the base name searched for in each config directory.
const configName = ".vrfit"

// envKeyReplacer maps nested keys such as log.level to VRFIT_LOG_LEVEL.
var envKeyReplacer = strings.NewReplacer(".", "_")

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatConsole)
	v.SetDefault("output", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}

// Load reads configuration from, in increasing priority: defaults, a
// .vrfit.{yaml,yml,json} file in the working directory or
// $XDG_CONFIG_HOME/vrfit, VRFIT_* environment variables, and any flags
// already bound to v.
//
// When v already has a file set through SetConfigFile, only that file is
// read and it must exist.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("VRFIT")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated fields.
func Validate(cfg *Config) error {
	switch cfg.Format {
	case FormatConsole, FormatJSON, FormatMarkdown, FormatYAML:
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', 'markdown', or 'yaml'", cfg.Format)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s. Must be 'debug', 'info', 'warn', or 'error'", cfg.Log.Level)
	}

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s. Must be 'console' or 'json'", cfg.Log.Format)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/vrfit, falling back to ~/.config/vrfit.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "vrfit"), nil
}
