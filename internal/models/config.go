package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the user-facing configuration consumed by the planning engine.
// The core packages receive the relevant fields as plain arguments; only the
// CLI layer reads this struct directly.
type Config struct {
	Seed       int     `mapstructure:"seed"`
	Scale      float64 `mapstructure:"scale"`
	OutputFile string  `mapstructure:"output_file_path"`
	LogLevel   string  `mapstructure:"log_level"`

	Categories           []string          `mapstructure:"categories"`
	CategoryOverrides    map[string]string `mapstructure:"category_overrides"`
	ExcludedKeywords     []string          `mapstructure:"excluded_keywords"`
	HistoryExclusionDays int               `mapstructure:"history_exclusion_days"`
	WeekStartDay         string            `mapstructure:"week_start_day"`
	DefaultSelection     map[string]int    `mapstructure:"default_selection"`
	ExcludedDays         []string          `mapstructure:"excluded_days"`
	PreferredDays        []string          `mapstructure:"preferred_days"`
	AutoAssignDays       bool              `mapstructure:"auto_assign_days"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("scale", 1.0)
	viper.SetDefault("history_exclusion_days", 14)
	viper.SetDefault("week_start_day", "monday")
	viper.SetDefault("auto_assign_days", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
