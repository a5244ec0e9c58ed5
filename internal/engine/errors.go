package engine

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected operation so transports can map it.
type Kind int

const (
	KindUnknown Kind = iota
	KindGameNotFound
	KindGameAlreadyOver
	KindInvalidOperation
	KindInvalidCoordinate
	KindInvalidGameParameters
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindGameNotFound:
		return "game_not_found"
	case KindGameAlreadyOver:
		return "game_already_over"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindInvalidCoordinate:
		return "invalid_coordinate"
	case KindInvalidGameParameters:
		return "invalid_game_parameters"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Every *Error matches the sentinel of its kind.
var (
	ErrGameNotFound          = errors.New("game not found")
	ErrGameAlreadyOver       = errors.New("game already over")
	ErrInvalidOperation      = errors.New("invalid operation")
	ErrInvalidCoordinate     = errors.New("invalid coordinate")
	ErrInvalidGameParameters = errors.New("invalid game parameters")
)

// Error is a deterministic rejection of an operation's precondition.
type Error struct {
	Kind    Kind
	Message string
	GameID  string
	Row     int
	Col     int
	HasCell bool
}

func (e *Error) Error() string {
	switch {
	case e.HasCell:
		return fmt.Sprintf("%s (game %s, cell %d,%d)", e.Message, e.GameID, e.Row, e.Col)
	case e.GameID != "":
		return fmt.Sprintf("%s (game %s)", e.Message, e.GameID)
	default:
		return e.Message
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindGameNotFound:
		return ErrGameNotFound
	case KindGameAlreadyOver:
		return ErrGameAlreadyOver
	case KindInvalidOperation:
		return ErrInvalidOperation
	case KindInvalidCoordinate:
		return ErrInvalidCoordinate
	case KindInvalidGameParameters:
		return ErrInvalidGameParameters
	default:
		return nil
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func cellError(kind Kind, msg, gameID string, row, col int) *Error {
	return &Error{Kind: kind, Message: msg, GameID: gameID, Row: row, Col: col, HasCell: true}
}
