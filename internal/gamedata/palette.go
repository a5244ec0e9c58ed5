package gamedata

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Hidden   string            `json:"hidden"`
	Revealed string            `json:"revealed"`
	Flag     string            `json:"flag"`
	Mine     string            `json:"mine"`
	Cursor   string            `json:"cursor"`
	Digits   map[string]string `json:"digits"` // "1".."8" -> hex
}

// Palette maps board elements to terminal colors.
type Palette struct {
	Hidden   tcell.Color
	Revealed tcell.Color
	Flag     tcell.Color
	Mine     tcell.Color
	Cursor   tcell.Color
	digits   [9]tcell.Color
}

// LoadPalette loads and parses the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// NewPalette parses every color in file.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{}
	fields := []struct {
		hex string
		dst *tcell.Color
	}{
		{file.Hidden, &p.Hidden},
		{file.Revealed, &p.Revealed},
		{file.Flag, &p.Flag},
		{file.Mine, &p.Mine},
		{file.Cursor, &p.Cursor},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}

	p.digits[0] = p.Revealed
	for n := 1; n <= 8; n++ {
		hex, ok := file.Digits[strconv.Itoa(n)]
		if !ok {
			p.digits[n] = tcell.ColorWhite
			continue
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		p.digits[n] = c
	}
	return p, nil
}

// DigitColor returns the color for an adjacent-mine count.
func (p *Palette) DigitColor(n int) tcell.Color {
	if n < 0 || n >= len(p.digits) {
		return tcell.ColorWhite
	}
	return p.digits[n]
}
