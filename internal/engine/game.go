package engine

import (
	"time"

	"github.com/samdwyer/minesweeper/internal/board"
)

// Game holds the state of one match.
type Game struct {
	ID           string
	Rows         int
	Cols         int
	MinesCount   int
	FlagCount    int // flags still available to place
	FlaggedMines int // flags currently sitting on mines
	IsGameOver   bool
	Won          bool
	MinesSeeded  bool
	CreatedAt    time.Time
	Board        *board.Board
}

// NewGame creates an unstarted game with every cell hidden.
func NewGame(id string, rows, cols, mines int, now time.Time) *Game {
	return &Game{
		ID:         id,
		Rows:       rows,
		Cols:       cols,
		MinesCount: mines,
		FlagCount:  mines,
		CreatedAt:  now,
		Board:      board.New(rows, cols),
	}
}

// State returns the lifecycle stage derived from the game's flags.
func (g *Game) State() State {
	switch {
	case g.IsGameOver:
		return StateOver
	case g.MinesSeeded:
		return StateInProgress
	default:
		return StateNotStarted
	}
}

// Cell returns the cell at (row, col), or false if it is off the board.
func (g *Game) Cell(row, col int) (board.Cell, bool) {
	c, ok := g.Board.At(row, col)
	if !ok {
		return board.Cell{}, false
	}
	return *c, true
}

// Clone returns a deep copy that shares no state with g.
func (g *Game) Clone() *Game {
	cp := *g
	if g.Board != nil {
		cp.Board = g.Board.Clone()
	}
	return &cp
}
