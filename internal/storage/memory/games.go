// Package memory provides volatile, concurrency-safe repositories.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/samdwyer/minesweeper/internal/engine"
)

// Games is an in-memory engine.GameRepository.
// It stores and returns copies, so callers never share state with it.
type Games struct {
	mu    sync.RWMutex
	games map[string]*engine.Game
}

// NewGames creates an empty game repository.
func NewGames() *Games {
	return &Games{games: make(map[string]*engine.Game)}
}

// Save inserts or replaces a game.
func (s *Games) Save(ctx context.Context, g *engine.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g == nil || g.ID == "" {
		return errors.New("game id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g.Clone()
	return nil
}

// FindByID returns a copy of the stored game.
func (s *Games) FindByID(ctx context.Context, id string) (*engine.Game, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, false, nil
	}
	return g.Clone(), true, nil
}

// Count returns the number of stored games.
func (s *Games) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
