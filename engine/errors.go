package engine

import (
	"errors"
	"fmt"
)

// ErrGridTooSmall means the board could not be labelled without ambiguity
var ErrGridTooSmall = errors.New("grid too small for the language's alphabet")

// InvariantError is the panic value for states the game must never reach
// The driving loop recovers it, restores the terminal and reports it
type InvariantError struct {
	Op     string
	Detail string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violated in %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func invariant(op string, err error, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...), Err: err})
}
