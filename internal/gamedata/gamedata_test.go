package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadDifficultyRegistry(t *testing.T) {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		t.Fatalf("Failed to load difficulties: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 difficulties, got %d", registry.Count())
	}

	expected := map[string][3]int{
		"beginner":     {9, 9, 10},
		"classic":      {10, 10, 10},
		"intermediate": {16, 16, 40},
		"expert":       {16, 30, 99},
	}
	for id, dims := range expected {
		d, ok := registry.Get(id)
		if !ok {
			t.Errorf("Expected difficulty %q not found", id)
			continue
		}
		if d.Rows != dims[0] || d.Cols != dims[1] || d.Mines != dims[2] {
			t.Errorf("%s: got %dx%d/%d, want %dx%d/%d", id, d.Rows, d.Cols, d.Mines, dims[0], dims[1], dims[2])
		}
	}

	if registry.Default().ID != "classic" {
		t.Errorf("Expected default 'classic', got %q", registry.Default().ID)
	}
	if _, ok := registry.Get(" Expert "); !ok {
		t.Error("Get should ignore case and surrounding space")
	}
	if _, ok := registry.Get("impossible"); ok {
		t.Error("Unknown difficulty should not be found")
	}
}

func TestDifficultyRegistryDefaultFallback(t *testing.T) {
	registry := NewDifficultyRegistry([]Difficulty{{ID: "a", Rows: 2, Cols: 2, Mines: 1}}, "missing")
	if registry.Default().ID != "a" {
		t.Errorf("Expected fallback to first preset, got %q", registry.Default().ID)
	}
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		d     Difficulty
		valid bool
	}{
		{Difficulty{ID: "ok", Rows: 9, Cols: 9, Mines: 10}, true},
		{Difficulty{ID: "", Rows: 9, Cols: 9, Mines: 10}, false},
		{Difficulty{ID: "flat", Rows: 0, Cols: 9, Mines: 1}, false},
		{Difficulty{ID: "full", Rows: 2, Cols: 2, Mines: 4}, false},
	}

	for _, tt := range tests {
		err := tt.d.Validate()
		if tt.valid && err != nil {
			t.Errorf("%+v should be valid, got error: %v", tt.d, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%+v should be invalid, got no error", tt.d)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#FF0000")
	if r, g, b := c.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("Expected pure red, got (%d,%d,%d)", r, g, b)
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for n := 1; n <= 8; n++ {
		if p.DigitColor(n) == tcell.ColorDefault {
			t.Errorf("Digit %d has no color", n)
		}
	}
	if p.DigitColor(0) != p.Revealed {
		t.Error("Zero cells should use the revealed color")
	}
	if p.DigitColor(-1) != tcell.ColorWhite || p.DigitColor(9) != tcell.ColorWhite {
		t.Error("Out of range digits should fall back to white")
	}
}

func TestNewPaletteRejectsBadColor(t *testing.T) {
	_, err := NewPalette(PaletteFile{Hidden: "nope", Revealed: "#000000", Flag: "#000000", Mine: "#000000", Cursor: "#000000"})
	if err == nil {
		t.Fatal("Expected error for invalid hidden color")
	}
}
