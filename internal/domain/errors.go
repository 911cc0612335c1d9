package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks a line inside a recognized fence that does not follow the entry grammar
	ErrSyntax = errors.New("syntax error")

	// ErrUnclosedFence marks a fenced block still open at the end of the document
	ErrUnclosedFence = errors.New("unclosed code block at end of document")

	// ErrInvalidKey marks a key that is empty or contains characters outside the steno alphabet
	ErrInvalidKey = errors.New("invalid key")
)

// LineError reports the line that made a load fail
type LineError struct {
	Index int    // 0-based line index
	Text  string // raw line, newline included
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("problem on line %d: %q: %v", e.Index, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
