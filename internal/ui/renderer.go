package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/gamedata"
)

const (
	// Board origin and horizontal cell pitch on screen.
	originX   = 1
	originY   = 1
	cellWidth = 2

	GlyphHidden    = '#'
	GlyphFlag      = 'F'
	GlyphMine      = '*'
	GlyphWrongFlag = 'X'
	GlyphEmpty     = '.'
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the board, the cursor and the status lines.
func (r *Renderer) Render(g *engine.Game, cursor board.Coord, status string) {
	r.screen.Clear()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			glyph, style := r.cellGlyph(g, g.Board.Cells[row][col])
			if row == cursor.Row && col == cursor.Col {
				style = style.Background(r.palette.Cursor)
			}
			x, y := ScreenPos(row, col)
			r.screen.Put(x, y, glyph, style)
		}
	}

	statusY := originY + g.Rows + 1
	r.RenderMessage(status, statusY)
	r.RenderMessage("arrows/hjkl move  space reveal  f flag  n new  q quit", statusY+1)

	r.screen.Show()
}

// cellGlyph picks what to draw for a cell. Mines are shown only once the
// game is over.
func (r *Renderer) cellGlyph(g *engine.Game, cell board.Cell) (rune, tcell.Style) {
	base := tcell.StyleDefault
	switch {
	case cell.IsRevealed && cell.IsMine:
		return GlyphMine, base.Foreground(r.palette.Mine).Bold(true)
	case cell.IsRevealed && cell.AdjacentMines == 0:
		return GlyphEmpty, base.Foreground(r.palette.Revealed)
	case cell.IsRevealed:
		return rune('0' + cell.AdjacentMines), base.Foreground(r.palette.DigitColor(cell.AdjacentMines)).Bold(true)
	case cell.IsFlagged && g.IsGameOver && !cell.IsMine:
		return GlyphWrongFlag, base.Foreground(r.palette.Mine)
	case cell.IsFlagged:
		return GlyphFlag, base.Foreground(r.palette.Flag).Bold(true)
	case g.IsGameOver && cell.IsMine:
		return GlyphMine, base.Foreground(r.palette.Mine)
	default:
		return GlyphHidden, base.Foreground(r.palette.Hidden)
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.PutText(originX, y, msg)
}

// ScreenPos returns the screen position of a board cell.
func ScreenPos(row, col int) (x, y int) {
	return originX + col*cellWidth, originY + row
}

// CellAt maps a screen position, including the gap after a glyph, back to
// a board cell.
func CellAt(x, y, rows, cols int) (board.Coord, bool) {
	if x < originX || y < originY {
		return board.Coord{}, false
	}
	pos := board.Coord{Row: y - originY, Col: (x - originX) / cellWidth}
	if pos.Row >= rows || pos.Col >= cols {
		return board.Coord{}, false
	}
	return pos, true
}
