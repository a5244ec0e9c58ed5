package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{
		"MINESWEEPER_ADDR", "MINESWEEPER_LOG_LEVEL", "MINESWEEPER_LOG_FORMAT",
		"MINESWEEPER_RESULTS_DB", "MINESWEEPER_DIFFICULTY", "MINESWEEPER_PLAYER", "MINESWEEPER_SEED",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.LogLevel != "info" || cfg.Difficulty != "classic" || cfg.Player != "player" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ResultsDB != "" || cfg.Seed != 0 {
		t.Errorf("unexpected optional values: %+v", cfg)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("MINESWEEPER_ADDR", ":9000")
	t.Setenv("MINESWEEPER_SEED", "42")
	t.Setenv("MINESWEEPER_DIFFICULTY", "expert")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Seed != 42 || cfg.Difficulty != "expert" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestParseRejectsBadSeed(t *testing.T) {
	t.Setenv("MINESWEEPER_SEED", "not-a-number")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error for invalid seed")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("MINESWEEPER_PLAYER", "")
	os.Unsetenv("MINESWEEPER_PLAYER")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MINESWEEPER_PLAYER=ann\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player != "ann" {
		t.Errorf("Player = %q, want ann", cfg.Player)
	}
}

func TestLoadToleratesMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := Config{LogLevel: "warn", LogFormat: "json"}.NewLogger(&buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}

	log.Info("hidden")
	log.WithField("game_id", "g1").Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(out, `"game_id":"g1"`) {
		t.Errorf("expected JSON field in output, got %q", out)
	}

	if _, err := (Config{LogLevel: "loud"}).NewLogger(&buf); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := (Config{LogLevel: "info", LogFormat: "xml"}).NewLogger(&buf); err == nil {
		t.Error("expected error for unknown format")
	}
}
