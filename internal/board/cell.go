// Package board provides the minesweeper grid, mine placement and reveal expansion.
package board

// MineSentinel is the AdjacentMines value stored on a mine cell.
const MineSentinel = -1

// Cell represents a single grid position.
type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool // never true while IsRevealed
	AdjacentMines int  // MineSentinel for mines, 0..8 otherwise
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}
