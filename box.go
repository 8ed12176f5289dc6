package mapper

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Box is a d-dimensional axis-aligned region: a closed interval
// [Min[k], Max[k]] per dimension. Min[k] <= Max[k] must hold in every
// dimension of a valid Box.
type Box struct {
	Min []float64
	Max []float64
}

// NewBox builds a Box from per-dimension lower and upper bounds.
// Returns an error if the slices differ in length or any min exceeds its max.
func NewBox(min, max []float64) (Box, error) {
	if len(min) != len(max) {
		return Box{}, fmt.Errorf("%w: min has %d dimensions, max has %d", ErrBadShape, len(min), len(max))
	}
	for k := range min {
		if min[k] > max[k] {
			return Box{}, fmt.Errorf("%w: min > max in dimension %d", ErrBadShape, k)
		}
	}
	return Box{Min: min, Max: max}, nil
}

// Dims returns the dimensionality of the box.
func (b Box) Dims() int { return len(b.Min) }

// Contains reports whether point p lies inside b. Bounds are inclusive;
// tol widens the box by tol on both sides of every dimension, absorbing
// floating point rounding at bin boundaries. Pass 0 for exact bounds.
func (b Box) Contains(p []float64, tol float64) bool {
	for k := range b.Min {
		if p[k] < b.Min[k]-tol || p[k] > b.Max[k]+tol {
			return false
		}
	}
	return true
}

// Intersects reports whether b and other overlap in every dimension.
// Intervals are closed, so boxes that merely share a boundary intersect.
func (b Box) Intersects(other Box) bool {
	for k := range b.Min {
		if b.Min[k] > other.Max[k] || b.Max[k] < other.Min[k] {
			return false
		}
	}
	return true
}

// boundsRow interprets a flat bounds row [min_1..min_d, max_1..max_d] of
// width 2d as a Box. The slices alias row; callers must not mutate it.
func boundsRow(row []float64) Box {
	d := len(row) / 2
	return Box{Min: row[:d], Max: row[d:]}
}

// boundsDims validates a bounds matrix (one flat row per box, width 2d,
// all rows equal width and even) and returns d. An empty matrix has
// dimensionality 0 and is valid: it describes an empty cover.
func boundsDims(bounds [][]float64) (int, error) {
	if len(bounds) == 0 {
		return 0, nil
	}
	w := len(bounds[0])
	if w == 0 || w%2 != 0 {
		return 0, fmt.Errorf("%w: bounds width %d is not a positive even number", ErrBadShape, w)
	}
	for i, row := range bounds {
		if len(row) != w {
			return 0, fmt.Errorf("%w: bounds row %d has width %d, want %d", ErrBadShape, i, len(row), w)
		}
	}
	return w / 2, nil
}

// pointDims validates a point matrix (one row per point, equal widths) and
// checks it against the cover dimensionality d. A d of 0 (empty cover)
// accepts any point width.
func pointDims(points [][]float64, d int) error {
	for i, p := range points {
		if len(p) != len(points[0]) {
			return fmt.Errorf("%w: point row %d has width %d, want %d", ErrBadShape, i, len(p), len(points[0]))
		}
	}
	if d > 0 && len(points) > 0 && len(points[0]) != d {
		return fmt.Errorf("%w: points have %d dimensions, bounds describe %d", ErrDimensionMismatch, len(points[0]), d)
	}
	return nil
}

// BoxesFromMatrix converts an n×2d bounds matrix (rows = boxes, columns =
// [min_1..min_d, max_1..max_d]) into a cover. The column count must be a
// positive even number.
func BoxesFromMatrix(m mat.Matrix) ([]Box, error) {
	r, c := m.Dims()
	if c == 0 || c%2 != 0 {
		return nil, fmt.Errorf("%w: bounds matrix has %d columns, want a positive even number", ErrBadShape, c)
	}
	d := c / 2
	cover := make([]Box, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = m.At(i, j)
		}
		cover[i] = Box{Min: row[:d], Max: row[d:]}
	}
	return cover, nil
}

// PointsFromMatrix converts an m×d matrix (rows = points) into a point set.
func PointsFromMatrix(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	points := make([][]float64, r)
	for i := 0; i < r; i++ {
		p := make([]float64, c)
		for j := 0; j < c; j++ {
			p[j] = m.At(i, j)
		}
		points[i] = p
	}
	return points
}
