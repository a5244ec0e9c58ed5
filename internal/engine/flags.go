package engine

import "github.com/samdwyer/minesweeper/internal/board"

// updateFlag sets the cell's flag and keeps the ledger counters in step.
// Callers validate preconditions first.
func updateFlag(g *Game, cell *board.Cell, placing bool) {
	cell.IsFlagged = placing

	delta := 1
	if !placing {
		delta = -1
	}
	g.FlagCount -= delta
	if cell.IsMine {
		g.FlaggedMines += delta
	}

	if g.FlaggedMines == g.MinesCount {
		g.IsGameOver = true
		g.Won = true
	}
}
