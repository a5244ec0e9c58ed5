// Package main runs the minesweeper JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samdwyer/minesweeper/internal/config"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/httpapi"
	"github.com/samdwyer/minesweeper/internal/storage/memory"
	"github.com/samdwyer/minesweeper/internal/storage/sqlite"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("minesweeper-server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	telemetry.ConfigureHoneycombEnv()

	logger, err := cfg.NewLogger(os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, "server")
	if err != nil {
		logger.WithError(err).Warn("telemetry setup failed, serving without traces")
	} else {
		defer func() {
			if err := shutdownTelemetry(context.Background()); err != nil {
				logger.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	difficulties, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return fmt.Errorf("load difficulties: %w", err)
	}

	var results engine.ResultRepository = memory.NewResults()
	if cfg.ResultsDB != "" {
		store, err := sqlite.Open(cfg.ResultsDB)
		if err != nil {
			return fmt.Errorf("open results db: %w", err)
		}
		defer store.Close()
		results = store
		logger.WithField("path", cfg.ResultsDB).Info("results stored in sqlite")
	}

	eng := engine.New(memory.NewGames(), engine.Config{Seed: cfg.Seed, Logger: logger})
	api := httpapi.New(eng, results, difficulties, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
