// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Game GameConfig `mapstructure:"game"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
}

// GameConfig holds table setup configuration.
type GameConfig struct {
	MinPlayers   int `mapstructure:"min_players"`
	MaxPlayers   int `mapstructure:"max_players"`
	StartingDice int `mapstructure:"starting_dice"`
}

// UIConfig holds terminal presentation configuration.
type UIConfig struct {
	// Plain disables colors and styling for dumb terminals.
	Plain bool `mapstructure:"plain"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. PERUDO_GAME_MAX_PLAYERS, PERUDO_LOG_LEVEL.
	v.SetEnvPrefix("perudo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is OK, defaults and env vars cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("game.min_players", 2)
	v.SetDefault("game.max_players", 6)
	v.SetDefault("game.starting_dice", 5)
	v.SetDefault("ui.plain", false)
	v.SetDefault("log.level", "warn")
}

func (c *Config) validate() error {
	if c.Game.MinPlayers < 2 {
		return fmt.Errorf("game.min_players must be at least 2, got %d", c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("game.max_players (%d) below game.min_players (%d)",
			c.Game.MaxPlayers, c.Game.MinPlayers)
	}
	// 5 is the hard cap on a player's dice count; starting above it would
	// make GainDie unreachable from the first round.
	if c.Game.StartingDice < 1 || c.Game.StartingDice > 5 {
		return fmt.Errorf("game.starting_dice must be between 1 and 5, got %d", c.Game.StartingDice)
	}
	return nil
}
