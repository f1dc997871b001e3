package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gravity is the standard gravitational acceleration in m/s^2.
const Gravity = 9.80665

// legacyExtent is the construction range of the historical fixed-size
// builder, which always wrote a 4x4 block regardless of the requested
// shape.
const legacyExtent = 4

// Options control difference matrix construction.
type Options struct {
	// LegacyFixedShape restricts the construction loop to the
	// historical 4x4 block. Shapes smaller than that block are
	// rejected rather than written out of bounds.
	LegacyFixedShape bool
}

// Option mutates construction Options.
type Option func(*Options)

// WithLegacyFixedShape reproduces the historical fixed 4x4
// construction range.
func WithLegacyFixedShape() Option {
	return func(o *Options) { o.LegacyFixedShape = true }
}

// Difference builds the spring-to-mass difference matrix: -1 on the
// main diagonal and +1 one column to the right, or two columns to the
// right when diagonalOffset is set. Entries outside those bands are
// zero.
//
// By default the construction honors the requested shape. With
// WithLegacyFixedShape only the leading 4x4 block is written and
// smaller shapes return ErrShapeMismatch.
func Difference(rows, cols int, diagonalOffset bool, opts ...Option) (*mat.Dense, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeShape, rows, cols)
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty shape %dx%d", ErrShapeMismatch, rows, cols)
	}

	extRows, extCols := rows, cols
	if o.LegacyFixedShape {
		if rows < legacyExtent || cols < legacyExtent {
			return nil, fmt.Errorf("%w: legacy construction writes a %dx%d block, got %dx%d",
				ErrShapeMismatch, legacyExtent, legacyExtent, rows, cols)
		}
		extRows, extCols = legacyExtent, legacyExtent
	}

	band := 1
	if diagonalOffset {
		band = 2
	}

	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < extRows; r++ {
		if r < extCols {
			m.Set(r, r, -1.0)
		}
		if c := r + band; c < extCols {
			m.Set(r, c, 1.0)
		}
	}
	return m, nil
}

// Incidence builds the banded incidence matrix eye(k=shift+1) minus
// eye(k=shift): +1 on the diagonal at offset shift+1 and -1 on the
// diagonal at offset shift. A shift of 0 places the -1 band on the
// main diagonal; a shift of -1 places the +1 band there. Rows encode
// springs, columns masses.
func Incidence(rows, cols, shift int) (*mat.Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeShape, rows, cols)
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty shape %dx%d", ErrShapeMismatch, rows, cols)
	}

	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		if c := r + shift + 1; c >= 0 && c < cols {
			m.Set(r, c, 1.0)
		}
		if c := r + shift; c >= 0 && c < cols {
			m.Set(r, c, -1.0)
		}
	}
	return m, nil
}

// SpringDiag builds the diagonal spring constant matrix C.
func SpringDiag(constants []float64) *mat.Dense {
	n := len(constants)
	m := mat.NewDense(n, n, nil)
	for i, k := range constants {
		m.Set(i, i, k)
	}
	return m
}

// ForceVector builds the gravity load vector f = g*m, one entry per
// mass.
func ForceVector(masses []float64, gravity float64) *mat.VecDense {
	f := mat.NewVecDense(len(masses), nil)
	for i, m := range masses {
		f.SetVec(i, gravity*m)
	}
	return f
}
