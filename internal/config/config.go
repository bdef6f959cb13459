// Package config manages shellesc configuration from files and environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/unrss/shellesc/internal/shell"
)

// Config holds shellesc configuration.
type Config struct {
	// Platform is the default target platform: auto, windows or linux.
	// Auto resolves to the host platform.
	Platform string `mapstructure:"platform"`

	// LogLevel is the minimum level written to stderr (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Color controls colored output on terminals. NO_COLOR still wins.
	Color bool `mapstructure:"color"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Platform: "auto",
		LogLevel: "warn",
		Color:    true,
	}
}

// Load reads configuration from file and environment variables.
// Configuration is loaded from (in order of precedence):
//  1. Environment variables (SHELLESC_*)
//  2. Config file ($XDG_CONFIG_HOME/shellesc/config.toml or ~/.config/shellesc/config.toml)
//  3. Default values
func Load() (*Config, error) {
	v := newViper()

	v.SetDefault("platform", "auto")
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", true)

	v.SetEnvPrefix("SHELLESC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded, or empty if none.
func ConfigFile() string {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "shellesc"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shellesc"))
	}

	return v
}

// TargetPlatform resolves the configured platform name.
// A nil config resolves to the host platform.
func (c *Config) TargetPlatform() (shell.Platform, error) {
	if c == nil {
		return shell.HostPlatform(), nil
	}
	return shell.ParsePlatform(c.Platform)
}
