package engine

import (
	"errors"
	"fmt"
)

// Domain errors for engine construction.
var (
	// ErrInvalidInterval indicates a non-positive tick or idle duration.
	ErrInvalidInterval = errors.New("engine: interval must be positive")
)

// InvalidStateError indicates an operation attempted in a state that
// forbids it, such as starting a reveal while one is in progress. It marks
// a host programming error and is never surfaced as a user-facing message.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("engine: %s not allowed while %s", e.Op, e.State)
}

// ConflictError indicates two modes bound to the same key. It is raised at
// registration time so a misconfigured view fails before it renders.
type ConflictError struct {
	Key      string
	Existing string
	Proposed string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("engine: key %q already bound to mode %q (rejected %q)",
		e.Key, e.Existing, e.Proposed)
}
