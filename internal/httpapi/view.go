package httpapi

import (
	"github.com/samdwyer/minesweeper/internal/engine"
)

// cellView is one cell as clients see it. Mine positions and counts of
// unopened cells stay hidden while the game is running.
type cellView struct {
	IsRevealed    bool `json:"isRevealed"`
	IsFlagged     bool `json:"isFlagged"`
	IsMine        bool `json:"isMine,omitempty"`
	AdjacentMines *int `json:"adjacentMines,omitempty"`
}

// gameView is a game as clients see it. FlaggedMines stays 0 until the game
// is over; a live count would tell the player which flags sit on mines.
type gameView struct {
	ID           string       `json:"id"`
	Rows         int          `json:"rows"`
	Cols         int          `json:"cols"`
	MinesCount   int          `json:"minesCount"`
	FlagCount    int          `json:"flagCount"`
	FlaggedMines int          `json:"flaggedMines"`
	State        string       `json:"state"`
	IsGameOver   bool         `json:"isGameOver"`
	Won          bool         `json:"won"`
	Board        [][]cellView `json:"board"`
}

func newGameView(g *engine.Game) gameView {
	v := gameView{
		ID:         g.ID,
		Rows:       g.Rows,
		Cols:       g.Cols,
		MinesCount: g.MinesCount,
		FlagCount:  g.FlagCount,
		State:      g.State().String(),
		IsGameOver: g.IsGameOver,
		Won:        g.Won,
		Board:      make([][]cellView, len(g.Board.Cells)),
	}
	if g.IsGameOver {
		v.FlaggedMines = g.FlaggedMines
	}
	for r, row := range g.Board.Cells {
		v.Board[r] = make([]cellView, len(row))
		for c, cell := range row {
			cv := cellView{IsRevealed: cell.IsRevealed, IsFlagged: cell.IsFlagged}
			if cell.IsRevealed || g.IsGameOver {
				n := cell.AdjacentMines
				cv.IsMine = cell.IsMine
				cv.AdjacentMines = &n
			}
			v.Board[r][c] = cv
		}
	}
	return v
}

type errorView struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
