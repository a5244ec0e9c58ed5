// Package engine runs minesweeper matches: creation, reveals, flags and the
// win/loss state machine.
package engine

// State is the lifecycle stage of a game.
type State int

const (
	// StateNotStarted means no cell has been revealed and mines are not seeded.
	StateNotStarted State = iota
	// StateInProgress means mines are seeded and the game is not over.
	StateInProgress
	// StateOver is terminal: a mine was hit or every mine was flagged.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
