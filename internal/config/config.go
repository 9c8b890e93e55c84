package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all viewer configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Watch   WatchConfig   `mapstructure:"watch"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	LineNumbers  bool   `mapstructure:"line_numbers"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
}

type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type HistoryConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "default",
			LineNumbers:  true,
			MouseEnabled: true,
		},
		Watch: WatchConfig{
			Enabled: true,
		},
		History: HistoryConfig{
			MaxEntries: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from files. An explicit path wins; otherwise the
// user config directory and the current directory are searched. A missing
// config file is fine, the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "jv"))
		}
		v.AddConfigPath(".")
	}

	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.line_numbers", true)
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("watch.enabled", true)
	v.SetDefault("history.max_entries", 100)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit path must exist and parse.
			if path != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "jv"), nil
}
