package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings of the imgview program
type Config struct {
	// File is an image to show. Empty shows the animated plot
	File string
	// Gray shows File as a grayscale image
	Gray bool
	// Interval between plot frames
	Interval time.Duration
	// Sixel paints one frame as sixel to stdout instead of running the UI
	Sixel bool
	// LogLevel is one of error, warn, info, debug, trace
	LogLevel string `mapstructure:"log_level"`
	// LogFile receives log output. Empty discards logs
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// IMGVIEW_. An empty path falls back to $IMGVIEW_CONFIG, then
// $HOME/.config/imgview/config.toml. A missing default file is not an error
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("file", "")
	v.SetDefault("gray", false)
	v.SetDefault("interval", 100*time.Millisecond)
	v.SetDefault("sixel", false)
	v.SetDefault("log_level", "error")
	v.SetDefault("log_file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("IMGVIEW_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "imgview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("IMGVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that can't be defaulted
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return nil
}
