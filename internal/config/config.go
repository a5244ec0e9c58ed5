// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds settings shared by the server and the terminal client.
type Config struct {
	Addr       string `env:"MINESWEEPER_ADDR" envDefault:":8080"`
	LogLevel   string `env:"MINESWEEPER_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"MINESWEEPER_LOG_FORMAT" envDefault:"text"`
	LogFile    string `env:"MINESWEEPER_LOG_FILE"`
	ResultsDB  string `env:"MINESWEEPER_RESULTS_DB"`
	Difficulty string `env:"MINESWEEPER_DIFFICULTY" envDefault:"classic"`
	Player     string `env:"MINESWEEPER_PLAYER" envDefault:"player"`
	Seed       int64  `env:"MINESWEEPER_SEED"`
}

// Load reads an optional .env file and parses the environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads Config from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a logrus logger writing to out at the configured level
// and format.
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return log, nil
}
