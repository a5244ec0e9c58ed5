package engine

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Result is one finished match in the history.
type Result struct {
	ID              int64     `json:"id"`
	Player          string    `json:"player"`
	Rows            int       `json:"rows"`
	Cols            int       `json:"cols"`
	Mines           int       `json:"mines"`
	Won             bool      `json:"won"`
	DurationSeconds int       `json:"durationSeconds"`
	RecordedAt      time.Time `json:"recordedAt"`
}

// ResultRepository stores match results. List returns newest first.
type ResultRepository interface {
	Save(ctx context.Context, r Result) (Result, error)
	List(ctx context.Context) ([]Result, error)
}

// NewResult summarizes a finished game for the history.
func NewResult(g *Game, player string, now time.Time) Result {
	secs := int(now.Sub(g.CreatedAt).Seconds())
	if secs < 0 {
		secs = 0
	}
	return Result{
		Player:          player,
		Rows:            g.Rows,
		Cols:            g.Cols,
		Mines:           g.MinesCount,
		Won:             g.Won,
		DurationSeconds: secs,
		RecordedAt:      now.UTC(),
	}
}

// Validate checks the fields a store requires.
func (r Result) Validate() error {
	if strings.TrimSpace(r.Player) == "" {
		return errors.New("player is required")
	}
	if r.Rows <= 0 || r.Cols <= 0 {
		return errors.New("rows and cols must be positive")
	}
	if r.Mines < 0 {
		return errors.New("mines must not be negative")
	}
	if r.DurationSeconds < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}
