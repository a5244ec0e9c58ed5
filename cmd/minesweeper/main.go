// Package main is the entry point for the terminal minesweeper client.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samdwyer/minesweeper/internal/config"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/storage/memory"
	"github.com/samdwyer/minesweeper/internal/storage/sqlite"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("minesweeper: %v", err)
	}
}

func run() error {
	// Load .env for local development; also makes
	// HONEYCOMB_MINESWEEPER_API_KEY available.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	telemetry.ConfigureHoneycombEnv()

	// The terminal owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := cfg.NewLogger(out)
	if err != nil {
		return err
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, "tui")
	if err != nil {
		// Continue without telemetry - game still works
		logger.WithError(err).Warn("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	difficulties, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return fmt.Errorf("load difficulties: %w", err)
	}
	difficulty, ok := difficulties.Get(cfg.Difficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", cfg.Difficulty)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	var results engine.ResultRepository = memory.NewResults()
	if cfg.ResultsDB != "" {
		store, err := sqlite.Open(cfg.ResultsDB)
		if err != nil {
			return fmt.Errorf("open results db: %w", err)
		}
		defer store.Close()
		results = store
	}

	eng := engine.New(memory.NewGames(), engine.Config{Seed: cfg.Seed, Logger: logger})

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g := game.New(screen, ui.NewRenderer(screen, palette), eng, results,
		game.Config{Difficulty: difficulty, Player: cfg.Player}, logger)
	return g.Run(ctx)
}
