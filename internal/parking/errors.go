package parking

import "github.com/pkg/errors"

// Sentinel errors for the core error taxonomy (spec §7).
var (
	ErrInvalidPuzzle = errors.New("puzzle state fails validation")
	ErrInvalidMove   = errors.New("move is not legal in the current state")
)
