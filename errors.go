package mapper

import "errors"

var (
	// ErrDimensionMismatch indicates that a point set's dimensionality does
	// not equal the cover's dimensionality (bounds width / 2).
	ErrDimensionMismatch = errors.New("mapper: dimension of points != dimension of bounds / 2")
	// ErrInvalidGridParameter indicates a degenerate grid parameterization:
	// an overlap fraction outside [0,1), or a zero/negative interval length,
	// step size, or interval count.
	ErrInvalidGridParameter = errors.New("mapper: invalid grid parameter")
	// ErrBadShape indicates a malformed matrix-shaped input: ragged rows,
	// an odd bounds width, or parallel inputs of differing lengths.
	ErrBadShape = errors.New("mapper: malformed input shape")
)
