package board

// Board is a rows x cols grid of cells indexed [row][col].
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// New creates a board with every cell hidden, unflagged and mine-free.
func New(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

// InBounds returns true if (row, col) addresses a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// At returns the cell at (row, col). The second result is false when the
// coordinate is off the board.
func (b *Board) At(row, col int) (*Cell, bool) {
	if !b.InBounds(row, col) {
		return nil, false
	}
	return &b.Cells[row][col], true
}

// Neighbors returns the in-bounds Moore neighborhood of (row, col).
func (b *Board) Neighbors(row, col int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.InBounds(row+dr, col+dc) {
				out = append(out, Coord{Row: row + dr, Col: col + dc})
			}
		}
	}
	return out
}

// MineCount returns the number of cells holding a mine.
func (b *Board) MineCount() int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c].IsMine {
				n++
			}
		}
	}
	return n
}

// FlaggedCount returns the number of flagged cells.
func (b *Board) FlaggedCount() int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c].IsFlagged {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := &Board{Rows: b.Rows, Cols: b.Cols, Cells: make([][]Cell, len(b.Cells))}
	for r := range b.Cells {
		cp.Cells[r] = append([]Cell(nil), b.Cells[r]...)
	}
	return cp
}
