package pager

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned by Run when the user pressed Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

var errNotTerminal = errors.New("not a terminal")

// TerminalError reports a failed terminal operation. It is fatal to the
// session; the terminal is still restored before it reaches the caller.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }
