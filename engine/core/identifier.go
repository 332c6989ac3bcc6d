package core

import "github.com/google/uuid"

// NewID returns a random identifier for scene objects. It never fails; a
// broken entropy source panics inside uuid.New.
func NewID() uuid.UUID {
	return uuid.New()
}
