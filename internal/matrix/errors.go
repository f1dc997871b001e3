package matrix

import "errors"

// Domain errors for matrix construction.
var (
	// ErrNegativeShape indicates a requested dimension below zero.
	ErrNegativeShape = errors.New("matrix: negative shape requested")

	// ErrShapeMismatch indicates a shape incompatible with the
	// fixed legacy construction range.
	ErrShapeMismatch = errors.New("matrix: shape incompatible with fixed construction range")
)
