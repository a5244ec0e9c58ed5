// Package game provides the terminal game loop around the engine.
package game

import "github.com/gdamore/tcell/v2"

// Action is a player command decoded from input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionReveal
	ActionFlag
	ActionNewMatch
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionNewMatch:
		return "new_match"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyAction decodes a key press.
func keyAction(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionReveal
	case tcell.KeyRune:
		switch ch {
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case ' ':
			return ActionReveal
		case 'f', 'F':
			return ActionFlag
		case 'n', 'N':
			return ActionNewMatch
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
