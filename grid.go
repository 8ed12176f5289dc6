package mapper

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// FixedGrid parameterizes a uniform overlapping grid over the filter space.
// The filter range along dimension k is [FilterMin[k], FilterMin[k]+FilterLen[k]],
// split into NumIntervals[k] base intervals; every bin is then widened so
// that grid-adjacent bins share exactly an Overlap fraction of the base
// interval length.
type FixedGrid struct {
	// NumIntervals is the requested number of intervals per dimension.
	// Every entry must be >= 1.
	NumIntervals []int

	// Overlap is the fraction of the base interval length shared by
	// grid-adjacent bins, in [0, 1). The bin geometry is undefined at 1
	// (division by zero), so 1 is rejected.
	Overlap float64

	// FilterMin is the lower end of the filter range per dimension.
	FilterMin []float64

	// FilterLen is the extent of the filter range per dimension.
	FilterLen []float64
}

// Validate checks the grid parameters. Geometry derivation on an invalid
// grid would produce NaN or infinite bounds rather than a clean failure,
// so builders validate first.
func (g FixedGrid) Validate() error {
	d := len(g.NumIntervals)
	if len(g.FilterMin) != d || len(g.FilterLen) != d {
		return fmt.Errorf("%w: NumIntervals, FilterMin and FilterLen must have equal length, got %d/%d/%d",
			ErrBadShape, d, len(g.FilterMin), len(g.FilterLen))
	}
	if g.Overlap < 0 || g.Overlap >= 1 {
		return fmt.Errorf("%w: overlap %v outside [0,1)", ErrInvalidGridParameter, g.Overlap)
	}
	for k, n := range g.NumIntervals {
		if n < 1 {
			return fmt.Errorf("%w: NumIntervals[%d] = %d, must be >= 1", ErrInvalidGridParameter, k, n)
		}
	}
	return nil
}

// RestrainedGrid parameterizes a grid with explicit per-dimension interval
// length and step size, independent of any derived overlap fraction. It
// generalizes FixedGrid to non-uniform or externally tuned step/width
// combinations, e.g. those produced by an adaptive refinement policy.
type RestrainedGrid struct {
	// IntervalLength is the width of every bin per dimension. Must be > 0.
	IntervalLength []float64

	// StepSize is the spacing between consecutive bin minima per dimension.
	// Must be > 0.
	StepSize []float64

	// FilterMin is the lower end of the filter range per dimension.
	FilterMin []float64
}

// Validate checks the grid parameters.
func (g RestrainedGrid) Validate() error {
	d := len(g.IntervalLength)
	if len(g.StepSize) != d || len(g.FilterMin) != d {
		return fmt.Errorf("%w: IntervalLength, StepSize and FilterMin must have equal length, got %d/%d/%d",
			ErrBadShape, d, len(g.StepSize), len(g.FilterMin))
	}
	for k := 0; k < d; k++ {
		if g.IntervalLength[k] <= 0 {
			return fmt.Errorf("%w: IntervalLength[%d] = %v, must be > 0", ErrInvalidGridParameter, k, g.IntervalLength[k])
		}
		if g.StepSize[k] <= 0 {
			return fmt.Errorf("%w: StepSize[%d] = %v, must be > 0", ErrInvalidGridParameter, k, g.StepSize[k])
		}
	}
	return nil
}

// BuildFixedCover builds one LevelSet per indexSet row on a fixed
// overlapping grid, fusing bound derivation and membership into one pass.
// Each indexSet row is a grid-coordinate vector with entries in
// [0, NumIntervals[k]); coordinates are not range-checked. For grid
// coordinate c along dimension k:
//
//	base      = FilterLen[k] / NumIntervals[k]
//	centroid  = FilterMin[k] + c*base + base/2
//	halfWidth = (base + base*Overlap/(1-Overlap)) / 2
//	bounds    = centroid ± halfWidth
//
// which makes grid-adjacent bins overlap by exactly Overlap*base along the
// dimension they differ in. Membership uses inclusive bounds with zero
// tolerance. The returned LevelSets carry their bounds.
func BuildFixedCover(filterValues [][]float64, indexSet [][]int, g FixedGrid) ([]LevelSet, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	d := len(g.NumIntervals)
	if err := pointDims(filterValues, d); err != nil {
		return nil, err
	}
	if err := indexDims(indexSet, d); err != nil {
		return nil, err
	}

	base := make([]float64, d)
	for k, n := range g.NumIntervals {
		base[k] = g.FilterLen[k] / float64(n)
	}
	// halfWidth = (base + base*overlap/(1-overlap)) / 2, elementwise.
	halfWidth := make([]float64, d)
	floats.ScaleTo(halfWidth, g.Overlap/(1-g.Overlap), base)
	floats.Add(halfWidth, base)
	floats.Scale(0.5, halfWidth)

	sets := make([]LevelSet, len(indexSet))
	for i, coord := range indexSet {
		lo := make([]float64, d)
		hi := make([]float64, d)
		for k := 0; k < d; k++ {
			centroid := g.FilterMin[k] + float64(coord[k])*base[k] + base[k]/2
			lo[k] = centroid - halfWidth[k]
			hi[k] = centroid + halfWidth[k]
		}
		box := Box{Min: lo, Max: hi}
		sets[i] = LevelSet{Bounds: box, Points: memberIndices(filterValues, box, 0)}
	}
	return sets, nil
}

// BuildRestrainedCover builds one LevelSet per indexSet row on a restrained
// grid: for grid coordinate c along dimension k the bin spans
// [FilterMin[k] + c*StepSize[k], FilterMin[k] + c*StepSize[k] + IntervalLength[k]].
// Membership uses inclusive bounds with zero tolerance. The returned
// LevelSets carry their bounds.
func BuildRestrainedCover(filterValues [][]float64, indexSet [][]int, g RestrainedGrid) ([]LevelSet, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	d := len(g.IntervalLength)
	if err := pointDims(filterValues, d); err != nil {
		return nil, err
	}
	if err := indexDims(indexSet, d); err != nil {
		return nil, err
	}

	sets := make([]LevelSet, len(indexSet))
	for i, coord := range indexSet {
		lo := make([]float64, d)
		for k := 0; k < d; k++ {
			lo[k] = g.FilterMin[k] + float64(coord[k])*g.StepSize[k]
		}
		hi := make([]float64, d)
		floats.AddTo(hi, lo, g.IntervalLength)
		box := Box{Min: lo, Max: hi}
		sets[i] = LevelSet{Bounds: box, Points: memberIndices(filterValues, box, 0)}
	}
	return sets, nil
}

// indexDims validates a grid-coordinate matrix: every row must have width d.
func indexDims(indexSet [][]int, d int) error {
	for i, coord := range indexSet {
		if len(coord) != d {
			return fmt.Errorf("%w: index set row %d has width %d, want %d", ErrBadShape, i, len(coord), d)
		}
	}
	return nil
}
