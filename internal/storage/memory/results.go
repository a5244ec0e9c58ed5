package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/samdwyer/minesweeper/internal/engine"
)

// Results is an in-memory engine.ResultRepository.
type Results struct {
	mu      sync.RWMutex
	nextID  int64
	results []engine.Result
}

// NewResults creates an empty result history.
func NewResults() *Results {
	return &Results{nextID: 1}
}

// Save appends a result and assigns its id.
func (s *Results) Save(ctx context.Context, r engine.Result) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	if err := r.Validate(); err != nil {
		return engine.Result{}, fmt.Errorf("invalid result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.results = append(s.results, r)
	return r, nil
}

// List returns all results, newest first.
func (s *Results) List(ctx context.Context) ([]engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.results)
	slices.Reverse(out)
	return out, nil
}
