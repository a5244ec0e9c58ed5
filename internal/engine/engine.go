package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Engine serves create, reveal and toggle-flag operations.
// It is safe for concurrent use; operations on the same game are serialized.
type Engine struct {
	repo   GameRepository
	ids    IDGenerator
	rng    *lockedRand
	log    logrus.FieldLogger
	now    func() time.Time
	tracer trace.Tracer

	locksMu sync.Mutex
	locks   map[string]*gameLock
}

// gameLock serializes operations on one game. refs counts holders and
// waiters; the entry is dropped when it reaches zero.
type gameLock struct {
	mu   sync.Mutex
	refs int
}

// New creates an engine backed by repo.
func New(repo GameRepository, cfg Config) *Engine {
	e := &Engine{
		repo:   repo,
		ids:    cfg.IDs,
		rng:    newLockedRand(cfg.Seed),
		log:    cfg.Logger,
		now:    cfg.Now,
		tracer: telemetry.Tracer("engine"),
		locks:  make(map[string]*gameLock),
	}
	if e.ids == nil {
		e.ids = UUIDGenerator
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Create starts a new game with the given dimensions and mine count.
func (e *Engine) Create(ctx context.Context, rows, cols, mines int) (*Game, error) {
	ctx, span := e.tracer.Start(ctx, "engine.create", trace.WithAttributes(
		attribute.Int("game.rows", rows),
		attribute.Int("game.cols", cols),
		attribute.Int("game.mines", mines),
	))
	defer span.End()

	if rows <= 0 || cols <= 0 {
		return nil, fail(span, &Error{Kind: KindInvalidGameParameters, Message: "rows and cols must be positive"})
	}
	if mines < 0 || mines >= rows*cols {
		return nil, fail(span, &Error{
			Kind:    KindInvalidGameParameters,
			Message: fmt.Sprintf("mines must be between 0 and %d", rows*cols-1),
		})
	}

	g := NewGame(e.ids.NewID(), rows, cols, mines, e.now().UTC())
	span.SetAttributes(attribute.String("game.id", g.ID))

	if err := e.repo.Save(ctx, g); err != nil {
		return nil, fail(span, fmt.Errorf("save game %s: %w", g.ID, err))
	}

	e.log.WithFields(logrus.Fields{
		"game_id": g.ID,
		"rows":    rows,
		"cols":    cols,
		"mines":   mines,
	}).Info("game created")
	return g.Clone(), nil
}

// Get returns the current state of a game.
func (e *Engine) Get(ctx context.Context, id string) (*Game, error) {
	unlock := e.lock(id)
	defer unlock()

	return e.find(ctx, id)
}

// Reveal opens the cell at (row, col). The first reveal of a game seeds the
// mines around it. Revealing on a finished game returns it unchanged.
func (e *Engine) Reveal(ctx context.Context, id string, row, col int) (*Game, error) {
	ctx, span := e.tracer.Start(ctx, "engine.reveal", trace.WithAttributes(
		attribute.String("game.id", id),
		attribute.Int("cell.row", row),
		attribute.Int("cell.col", col),
	))
	defer span.End()

	unlock := e.lock(id)
	defer unlock()

	g, err := e.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}
	log := e.log.WithFields(logrus.Fields{"game_id": id, "row": row, "col": col})

	cell, ok := g.Board.At(row, col)
	if !ok {
		log.Warn("reveal outside the board")
		return nil, fail(span, cellError(KindInvalidCoordinate, "cell is outside the board", id, row, col))
	}

	if g.IsGameOver {
		log.Warn("reveal on a finished game")
		return g, nil
	}

	if !g.MinesSeeded {
		placed := g.Board.PlaceMines(e.rng, g.MinesCount, row, col)
		g.Board.ComputeAdjacentCounts()
		g.MinesSeeded = true
		span.SetAttributes(attribute.Int("game.mines_placed", placed))
		log.WithField("mines_placed", placed).Info("first reveal, mines seeded")
	}

	if cell.IsFlagged || cell.IsRevealed {
		return g, nil
	}

	if cell.IsMine {
		cell.IsRevealed = true
		g.IsGameOver = true
		span.SetAttributes(attribute.Bool("game.lost", true))
		log.Warn("mine hit, game lost")
	} else {
		opened := g.Board.FloodReveal(row, col)
		span.SetAttributes(attribute.Int("cells.revealed", opened))
	}

	if err := e.repo.Save(ctx, g); err != nil {
		return nil, fail(span, fmt.Errorf("save game %s: %w", id, err))
	}
	return g, nil
}

// ToggleFlag places or removes a flag on (row, col).
// Flagging every mine wins the game.
func (e *Engine) ToggleFlag(ctx context.Context, id string, row, col int) (*Game, error) {
	ctx, span := e.tracer.Start(ctx, "engine.toggle_flag", trace.WithAttributes(
		attribute.String("game.id", id),
		attribute.Int("cell.row", row),
		attribute.Int("cell.col", col),
	))
	defer span.End()

	unlock := e.lock(id)
	defer unlock()

	g, err := e.find(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}
	log := e.log.WithFields(logrus.Fields{"game_id": id, "row": row, "col": col})

	cell, ok := g.Board.At(row, col)
	if !ok {
		log.Warn("flag outside the board")
		return nil, fail(span, cellError(KindInvalidCoordinate, "cell is outside the board", id, row, col))
	}

	if g.IsGameOver {
		log.Warn("flag on a finished game")
		return nil, fail(span, &Error{Kind: KindGameAlreadyOver, Message: "no flag, game over", GameID: id})
	}
	if cell.IsRevealed {
		log.Warn("flag on a revealed cell")
		return nil, fail(span, cellError(KindInvalidOperation, "cannot flag a revealed cell", id, row, col))
	}

	placing := !cell.IsFlagged
	if placing && g.FlagCount <= 0 {
		log.Warn("no flags remaining")
		return nil, fail(span, cellError(KindInvalidOperation, "no flags remaining", id, row, col))
	}

	updateFlag(g, cell, placing)
	span.SetAttributes(
		attribute.Bool("flag.placed", placing),
		attribute.Int("game.flag_count", g.FlagCount),
	)
	log.WithField("placed", placing).Info("flag toggled")
	if g.IsGameOver {
		log.Info("all mines flagged, game won")
	}

	if err := e.repo.Save(ctx, g); err != nil {
		return nil, fail(span, fmt.Errorf("save game %s: %w", id, err))
	}
	return g, nil
}

// find loads a game or reports it missing.
func (e *Engine) find(ctx context.Context, id string) (*Game, error) {
	g, ok, err := e.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game %s: %w", id, err)
	}
	if !ok {
		e.log.WithField("game_id", id).Error("game not found")
		return nil, &Error{Kind: KindGameNotFound, Message: "game not found", GameID: id}
	}
	return g, nil
}

// lock acquires the mutex for a game id and returns its release.
// Entries live only while someone holds or waits on them, so ids that are
// never created do not accumulate.
func (e *Engine) lock(id string) func() {
	e.locksMu.Lock()
	l, ok := e.locks[id]
	if !ok {
		l = &gameLock{}
		e.locks[id] = l
	}
	l.refs++
	e.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		e.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(e.locks, id)
		}
		e.locksMu.Unlock()
	}
}

// lockCount reports how many per-game locks are live.
func (e *Engine) lockCount() int {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	return len(e.locks)
}

// fail records err on the span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
