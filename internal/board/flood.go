package board

// FloodReveal reveals (startRow, startCol) and, breadth-first, every safe
// cell reachable through cells with no adjacent mines.
// Flagged cells block the expansion and mines are never enqueued.
// It returns the number of cells newly revealed.
func (b *Board) FloodReveal(startRow, startCol int) int {
	if !b.InBounds(startRow, startCol) {
		return 0
	}

	revealed := 0
	queue := []Coord{{Row: startRow, Col: startCol}}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		cell := &b.Cells[pos.Row][pos.Col]
		if cell.IsRevealed || cell.IsFlagged {
			continue
		}
		cell.IsRevealed = true
		revealed++

		if cell.AdjacentMines != 0 {
			continue
		}
		for _, n := range b.Neighbors(pos.Row, pos.Col) {
			next := b.Cells[n.Row][n.Col]
			if !next.IsRevealed && !next.IsMine {
				queue = append(queue, n)
			}
		}
	}
	return revealed
}
