package board

// Shuffler randomizes the order of n elements through swap.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// PlaceMines marks min(count, rows*cols-1) cells as mines, chosen uniformly
// at random among every cell except (excludeRow, excludeCol).
// It returns the number of mines placed.
func (b *Board) PlaceMines(rng Shuffler, count, excludeRow, excludeCol int) int {
	candidates := make([]Coord, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if r == excludeRow && c == excludeCol {
				continue
			}
			candidates = append(candidates, Coord{Row: r, Col: c})
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := max(min(count, len(candidates)), 0)
	for _, pos := range candidates[:placed] {
		b.Cells[pos.Row][pos.Col].IsMine = true
	}
	return placed
}

// ComputeAdjacentCounts stores the neighboring mine count on every cell.
// Mines get MineSentinel. The mine layout must not change afterwards.
func (b *Board) ComputeAdjacentCounts() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := &b.Cells[r][c]
			if cell.IsMine {
				cell.AdjacentMines = MineSentinel
				continue
			}

			count := 0
			for _, n := range b.Neighbors(r, c) {
				if b.Cells[n.Row][n.Col].IsMine {
					count++
				}
			}
			cell.AdjacentMines = count
		}
	}
}
