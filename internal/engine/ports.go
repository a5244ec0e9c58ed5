package engine

import (
	"context"

	"github.com/google/uuid"
)

// GameRepository stores games by id. Implementations must be safe for
// concurrent use and must not hand out references to their stored copy.
type GameRepository interface {
	Save(ctx context.Context, g *Game) error
	FindByID(ctx context.Context, id string) (*Game, bool, error)
}

// IDGenerator produces unique opaque game identifiers.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string { return f() }

// UUIDGenerator issues random (version 4) UUID strings.
var UUIDGenerator IDGenerator = IDFunc(uuid.NewString)
