package game

import "github.com/samdwyer/minesweeper/internal/gamedata"

// Config holds terminal client options.
type Config struct {
	// Difficulty sets the board for every new match.
	Difficulty gamedata.Difficulty

	// Player is the name stored with finished-match results.
	Player string
}
