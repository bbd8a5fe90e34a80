// Package main is the entry point for the Perudo terminal game.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"perudo-game/internal/config"
	"perudo-game/internal/dice"
	"perudo-game/internal/game"
	"perudo-game/internal/ui"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	log.Debug().
		Int("min_players", cfg.Game.MinPlayers).
		Int("max_players", cfg.Game.MaxPlayers).
		Int("starting_dice", cfg.Game.StartingDice).
		Msg("Configuration loaded")

	// Table setup
	terminal := ui.New(cfg.UI.Plain)
	terminal.ShowBanner()

	count := terminal.PromptPlayerCount(cfg.Game.MinPlayers, cfg.Game.MaxPlayers)
	names := terminal.PromptPlayerNames(count)
	terminal.ShowMessage(fmt.Sprintf("Game starting with %d players!", count))

	session := game.New(&game.Config{
		StartingDice: cfg.Game.StartingDice,
	}, names, terminal, dice.NewRoller())

	session.Run()
}
