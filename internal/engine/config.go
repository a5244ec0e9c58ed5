package engine

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds engine construction options. The zero value is usable.
type Config struct {
	// Seed for mine placement. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// IDs issues game identifiers. Defaults to UUIDGenerator.
	IDs IDGenerator

	// Logger receives operation logs. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// Now is the clock used for CreatedAt. Defaults to time.Now.
	Now func() time.Time
}
