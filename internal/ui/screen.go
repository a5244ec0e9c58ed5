// Package ui draws the minesweeper board with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the board is drawn on.
type Screen struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s for play, such as a simulation screen in
// tests. Only button presses and releases are reported, not drag motion.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(base)
	s.EnableMouse(tcell.MouseButtonEvents)
	s.Clear()
	return &Screen{screen: s, base: base}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key, mouse or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync redraws everything, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Put draws one glyph.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// PutText draws msg left to right starting at (x, y) in the base style.
func (s *Screen) PutText(x, y int, msg string) {
	for i, ch := range []rune(msg) {
		s.screen.SetContent(x+i, y, ch, nil, s.base)
	}
}

// ContentAt returns the glyph and style drawn at (x, y).
func (s *Screen) ContentAt(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}
