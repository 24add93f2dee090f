package domain

import (
	"errors"
	"fmt"
)

// Errors returned by domain operations.
var (
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrWrongPlayer     = errors.New("wrong player")
	ErrIllegalPlace    = errors.New("illegal place")
	ErrIllegalMove     = errors.New("illegal move")
	ErrIllegalRemove   = errors.New("illegal remove")
	ErrProtectedByMill = errors.New("protected by mill")
	ErrGameOver        = errors.New("game over")
	ErrNothingToUndo   = errors.New("nothing to undo")

	// ErrMalformedAction is wrapped by every ParseError.
	ErrMalformedAction = errors.New("malformed action")
)

// ParseError describes why a textual action could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedAction, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformedAction }

// RuleErrors lists every rule violation the engine can report, in a stable
// order. Collaborators use it to map error names back to sentinels.
var RuleErrors = []error{
	ErrOutOfBounds,
	ErrWrongPlayer,
	ErrIllegalPlace,
	ErrIllegalMove,
	ErrIllegalRemove,
	ErrProtectedByMill,
	ErrGameOver,
	ErrNothingToUndo,
}

// Kind returns the sentinel that err wraps, or nil if err is not a rule error.
func Kind(err error) error {
	for _, k := range RuleErrors {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
