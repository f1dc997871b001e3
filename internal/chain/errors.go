package chain

import (
	"errors"
	"fmt"
)

// Domain errors for chain definition.
var (
	// ErrInvalidInput indicates a non-numeric token in a
	// comma-separated value list.
	ErrInvalidInput = errors.New("chain: invalid numeric input")

	// ErrEmptyList indicates a value list with no tokens.
	ErrEmptyList = errors.New("chain: empty value list")

	// ErrCountMismatch indicates a declared element count that
	// disagrees with the supplied value list.
	ErrCountMismatch = errors.New("chain: declared count does not match value list")

	// ErrImproperSystem indicates a topology that cannot be closed
	// with the supplied number of springs.
	ErrImproperSystem = errors.New("chain: not enough springs to complete the system")
)

// ParseError wraps ErrInvalidInput with the offending token and its
// position in the list.
type ParseError struct {
	Token    string
	Position int
	Wrapped  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %q at position %d: %v", e.Token, e.Position, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidInput
}
