package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

// Engine is the subset of the engine the terminal client drives.
type Engine interface {
	Create(ctx context.Context, rows, cols, mines int) (*engine.Game, error)
	Reveal(ctx context.Context, id string, row, col int) (*engine.Game, error)
	ToggleFlag(ctx context.Context, id string, row, col int) (*engine.Game, error)
}

// Game holds the terminal client state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   Engine
	results  engine.ResultRepository
	log      logrus.FieldLogger
	cfg      Config

	match    *engine.Game
	cursor   board.Coord
	message  string
	recorded bool
	running  bool
	buttons  tcell.ButtonMask // held at the last mouse event
}

// New creates a terminal client. results may be nil to skip the history.
func New(screen *ui.Screen, renderer *ui.Renderer, eng Engine, results engine.ResultRepository, cfg Config, log logrus.FieldLogger) *Game {
	return &Game{
		screen:   screen,
		renderer: renderer,
		engine:   eng,
		results:  results,
		log:      log,
		cfg:      cfg,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
// The screen is closed when Run returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.newMatch(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

// newMatch replaces the current match with a fresh one.
func (g *Game) newMatch(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_match")
	defer span.End()

	d := g.cfg.Difficulty
	m, err := g.engine.Create(ctx, d.Rows, d.Cols, d.Mines)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("create match: %w", err)
	}
	span.SetAttributes(
		attribute.String("game.id", m.ID),
		attribute.String("game.difficulty", d.ID),
	)

	g.match = m
	g.cursor = board.Coord{Row: d.Rows / 2, Col: d.Cols / 2}
	g.recorded = false
	g.message = fmt.Sprintf("New %s game", d.Name)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.apply(ctx, keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		g.handleMouse(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleMouse reveals on left click and flags on right click. Only the
// press acts; a held button reporting again does not repeat the action.
func (g *Game) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ g.buttons
	g.buttons = buttons

	x, y := ev.Position()
	pos, ok := ui.CellAt(x, y, g.match.Rows, g.match.Cols)
	if !ok {
		return
	}

	switch {
	case pressed&tcell.Button1 != 0:
		g.cursor = pos
		g.apply(ctx, ActionReveal)
	case pressed&tcell.Button2 != 0:
		g.cursor = pos
		g.apply(ctx, ActionFlag)
	}
}

// apply performs one player action.
func (g *Game) apply(ctx context.Context, action Action) {
	switch action {
	case ActionQuit:
		g.running = false
	case ActionUp:
		g.moveCursor(-1, 0)
	case ActionDown:
		g.moveCursor(1, 0)
	case ActionLeft:
		g.moveCursor(0, -1)
	case ActionRight:
		g.moveCursor(0, 1)
	case ActionNewMatch:
		if err := g.newMatch(ctx); err != nil {
			g.message = err.Error()
		}
	case ActionReveal:
		g.play(ctx, g.engine.Reveal)
	case ActionFlag:
		g.play(ctx, g.engine.ToggleFlag)
	}
}

// moveCursor moves the cursor, clamped to the board.
func (g *Game) moveCursor(dRow, dCol int) {
	row := min(max(g.cursor.Row+dRow, 0), g.match.Rows-1)
	col := min(max(g.cursor.Col+dCol, 0), g.match.Cols-1)
	g.cursor = board.Coord{Row: row, Col: col}
}

type operation func(ctx context.Context, id string, row, col int) (*engine.Game, error)

// play runs an engine operation on the cursor cell.
func (g *Game) play(ctx context.Context, op operation) {
	m, err := op(ctx, g.match.ID, g.cursor.Row, g.cursor.Col)
	if err != nil {
		var engErr *engine.Error
		if errors.As(err, &engErr) {
			g.message = engErr.Message
		} else {
			g.message = err.Error()
		}
		return
	}

	g.match = m
	g.message = ""
	if m.IsGameOver {
		g.finish(ctx)
	}
}

// finish announces the result and stores it once per match.
func (g *Game) finish(ctx context.Context) {
	if g.match.Won {
		g.message = "All mines flagged, you win! Press n for a new game"
	} else {
		g.message = "Boom! You hit a mine. Press n for a new game"
	}
	if g.recorded || g.results == nil {
		return
	}
	g.recorded = true

	r, err := g.results.Save(ctx, engine.NewResult(g.match, g.cfg.Player, time.Now()))
	if err != nil {
		g.log.WithError(err).Warn("could not record result")
		return
	}
	g.log.WithFields(logrus.Fields{
		"result_id": r.ID,
		"won":       r.Won,
		"seconds":   r.DurationSeconds,
	}).Info("result recorded")
}

// status describes the current match for the status line.
func (g *Game) status() string {
	line := fmt.Sprintf("Flags: %d/%d  %s", g.match.FlagCount, g.match.MinesCount, g.match.State())
	if g.message != "" {
		line += "  " + g.message
	}
	return line
}

func (g *Game) render() {
	g.renderer.Render(g.match, g.cursor, g.status())
}
