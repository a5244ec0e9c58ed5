package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/gamedata"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(screen.Close)

	palette, err := gamedata.LoadPalette()
	if err != nil {
		t.Fatalf("load palette: %v", err)
	}
	return NewRenderer(screen, palette), screen
}

func TestRenderHidesMinesWhilePlaying(t *testing.T) {
	r, screen := newTestRenderer(t)

	g := engine.NewGame("g", 2, 3, 1, time.Now())
	g.Board.Cells[0][0].IsMine = true
	g.Board.ComputeAdjacentCounts()
	g.MinesSeeded = true
	g.Board.Cells[0][1].IsRevealed = true
	g.Board.Cells[1][2].IsRevealed = true
	g.Board.Cells[1][0].IsFlagged = true

	r.Render(g, board.Coord{Row: 1, Col: 1}, "playing")

	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, GlyphHidden},
		{0, 1, '1'},
		{1, 2, GlyphEmpty},
		{1, 0, GlyphFlag},
	}
	for _, tt := range tests {
		x, y := ScreenPos(tt.row, tt.col)
		if got, _ := screen.ContentAt(x, y); got != tt.want {
			t.Errorf("cell (%d,%d) drawn as %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRenderShowsMinesWhenOver(t *testing.T) {
	r, screen := newTestRenderer(t)

	g := engine.NewGame("g", 2, 2, 1, time.Now())
	g.Board.Cells[1][1].IsMine = true
	g.Board.Cells[0][0].IsFlagged = true
	g.Board.ComputeAdjacentCounts()
	g.MinesSeeded = true
	g.IsGameOver = true

	r.Render(g, board.Coord{}, "lost")

	x, y := ScreenPos(1, 1)
	if got, _ := screen.ContentAt(x, y); got != GlyphMine {
		t.Errorf("mine drawn as %q after game over", got)
	}
	x, y = ScreenPos(0, 0)
	if got, _ := screen.ContentAt(x, y); got != GlyphWrongFlag {
		t.Errorf("wrong flag drawn as %q after game over", got)
	}
}

func TestCellAtRoundTrip(t *testing.T) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			x, y := ScreenPos(row, col)
			pos, ok := CellAt(x, y, 3, 4)
			if !ok || pos.Row != row || pos.Col != col {
				t.Errorf("CellAt(ScreenPos(%d,%d)) = %v, %v", row, col, pos, ok)
			}
		}
	}

	if _, ok := CellAt(0, 0, 3, 4); ok {
		t.Error("border position should not map to a cell")
	}
	if pos, ok := CellAt(originX+1, originY, 3, 4); !ok || pos.Col != 0 {
		t.Errorf("gap after a glyph should map to that cell, got %v, %v", pos, ok)
	}
	x, y := ScreenPos(3, 0)
	if _, ok := CellAt(x, y, 3, 4); ok {
		t.Error("row past the board should not map to a cell")
	}
}

func TestRenderHighlightsCursor(t *testing.T) {
	r, screen := newTestRenderer(t)

	g := engine.NewGame("g", 2, 2, 1, time.Now())
	r.Render(g, board.Coord{Row: 1, Col: 0}, "")

	x, y := ScreenPos(1, 0)
	_, style := screen.ContentAt(x, y)
	if _, bg, _ := style.Decompose(); bg != r.palette.Cursor {
		t.Errorf("cursor background = %v, want %v", bg, r.palette.Cursor)
	}
	x, y = ScreenPos(0, 1)
	_, style = screen.ContentAt(x, y)
	if _, bg, _ := style.Decompose(); bg == r.palette.Cursor {
		t.Error("non-cursor cell drawn with the cursor background")
	}
}
