package mapper

import "fmt"

// defaultTolerance is one machine epsilon (2^-52), the slack applied at bin
// boundaries by the disjoint assignment path.
const defaultTolerance = 0x1p-52

// Unassigned is the sentinel bin id for points contained by no bin.
const Unassigned = -1

// LevelSet is one bin of a cover: its bounding Box and the 0-based indices
// of the points it contains.
type LevelSet struct {
	// Bounds is the bin's box. It is the zero Box when bounds were not
	// requested; when populated from caller-supplied bounds rows the slices
	// alias the input row, so the bounds round-trip exactly.
	Bounds Box

	// Points holds the indices of the member points, in point order.
	Points []int
}

// TieBreak selects which bin wins when a point satisfies the bounds of more
// than one bin of a nominally disjoint cover (floating point or caller
// error may violate disjointness).
type TieBreak string

const (
	// LastMatchWins assigns the point to the last matching bin in cover
	// order: each bin's membership test unconditionally overwrites any
	// earlier assignment. This is the reference behavior and the default.
	LastMatchWins TieBreak = "last"

	// FirstMatchWins keeps the first matching bin in cover order.
	FirstMatchWins TieBreak = "first"
)

// IndexConfig controls disjoint assignment.
type IndexConfig struct {
	// Tolerance widens every bin by this much on both sides of every
	// dimension, absorbing floating point rounding at bin boundaries.
	// The zero value means exact inclusive bounds.
	Tolerance float64

	// TieBreak resolves points matching more than one bin.
	// Empty defaults to LastMatchWins.
	TieBreak TieBreak
}

// DefaultIndexConfig returns the reference disjoint-assignment behavior:
// one machine epsilon of boundary slack, last match wins.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{Tolerance: defaultTolerance, TieBreak: LastMatchWins}
}

// IsoAlignedConfig controls generic (overlapping) level set construction.
type IsoAlignedConfig struct {
	// Tolerance widens every box by this much on both sides of every
	// dimension. The default is 0: exact inclusive bounds, unlike the
	// disjoint path's machine-epsilon default.
	Tolerance float64

	// SaveBounds attaches each box to its LevelSet for later reuse,
	// e.g. as IntersectCovers input.
	SaveBounds bool
}

// DisjointIndex assigns each point to the single bin of a disjoint cover
// that contains it. bounds has one flat row per bin,
// [min_1..min_d, max_1..max_d]. The result holds one 1-based bin id per
// point, or Unassigned (-1) for points contained by no bin. Containment is
// inclusive with one machine epsilon of slack; if a point satisfies several
// bins, the last one in cover order wins. See DisjointIndexWith for
// injectable tolerance and tie-break.
func DisjointIndex(points, bounds [][]float64) ([]int, error) {
	return DisjointIndexWith(points, bounds, DefaultIndexConfig())
}

// DisjointIndexWith is DisjointIndex with an explicit tolerance and
// tie-break policy.
func DisjointIndexWith(points, bounds [][]float64, cfg IndexConfig) ([]int, error) {
	d, err := boundsDims(bounds)
	if err != nil {
		return nil, err
	}
	if err := pointDims(points, d); err != nil {
		return nil, err
	}
	if cfg.TieBreak == "" {
		cfg.TieBreak = LastMatchWins
	}
	if cfg.TieBreak != LastMatchWins && cfg.TieBreak != FirstMatchWins {
		return nil, fmt.Errorf("mapper: invalid TieBreak %q", cfg.TieBreak)
	}

	res := make([]int, len(points))
	for p := range res {
		res[p] = Unassigned
	}
	// Bins in cover order, points inner: with LastMatchWins each matching
	// bin overwrites the previous assignment, so the last match survives.
	for i, row := range bounds {
		box := boundsRow(row)
		for p, pt := range points {
			if cfg.TieBreak == FirstMatchWins && res[p] != Unassigned {
				continue
			}
			if box.Contains(pt, cfg.Tolerance) {
				res[p] = i + 1
			}
		}
	}
	return res, nil
}

// assignPoint computes the disjoint bin id for a single point. Produces the
// same value as the bin-major loop in DisjointIndexWith; used by the
// parallel variant, which decomposes along points.
func assignPoint(pt []float64, bounds [][]float64, cfg IndexConfig) int {
	res := Unassigned
	for i, row := range bounds {
		if boundsRow(row).Contains(pt, cfg.Tolerance) {
			res = i + 1
			if cfg.TieBreak == FirstMatchWins {
				break
			}
		}
	}
	return res
}

// BuildIsoAlignedCover builds one LevelSet per bounds row from arbitrary
// caller-supplied, possibly overlapping iso-aligned boxes: each set holds
// the indices of every point inside its box (inclusive bounds, zero
// tolerance). A point may land in zero or more sets. With saveBounds, each
// LevelSet also carries its Box, unchanged from the input row.
func BuildIsoAlignedCover(points, bounds [][]float64, saveBounds bool) ([]LevelSet, error) {
	return BuildIsoAlignedCoverWith(points, bounds, IsoAlignedConfig{SaveBounds: saveBounds})
}

// BuildIsoAlignedCoverWith is BuildIsoAlignedCover with an explicit
// tolerance.
func BuildIsoAlignedCoverWith(points, bounds [][]float64, cfg IsoAlignedConfig) ([]LevelSet, error) {
	d, err := boundsDims(bounds)
	if err != nil {
		return nil, err
	}
	if err := pointDims(points, d); err != nil {
		return nil, err
	}

	sets := make([]LevelSet, len(bounds))
	for i, row := range bounds {
		sets[i] = isoLevelSet(points, boundsRow(row), cfg)
	}
	return sets, nil
}

// isoLevelSet builds the LevelSet of a single box.
func isoLevelSet(points [][]float64, box Box, cfg IsoAlignedConfig) LevelSet {
	ls := LevelSet{Points: memberIndices(points, box, cfg.Tolerance)}
	if cfg.SaveBounds {
		ls.Bounds = box
	}
	return ls
}

// memberIndices returns the indices of all points inside box, in point order.
func memberIndices(points [][]float64, box Box, tol float64) []int {
	members := make([]int, 0)
	for p, pt := range points {
		if box.Contains(pt, tol) {
			members = append(members, p)
		}
	}
	return members
}
