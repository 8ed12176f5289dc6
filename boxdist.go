package mapper

import (
	"fmt"
	"math"
)

// BoxDistances computes box-expansion distances on a single dimension
// partitioned into numIntervals contiguous bins of width intervalLength.
//
// positions holds each point's current bin position (1-based).
// distToLower and distToUpper hold the point's precomputed distances to the
// lower and upper boundary of its own bin. For every other bin position
// target in [1, numIntervals], the distance is the minimal expansion that
// bin needs to reach the point:
//
//	offset   = (|target - pos| - 1) * intervalLength
//	distance = target < pos ? distToLower + offset : distToUpper + offset
//
// so a grid-adjacent bin needs exactly the boundary distance, and each
// further bin adds one interval length. The two returned tables are
// parallel, one row per point and numIntervals-1 columns: target positions
// in ascending order ({1..numIntervals} minus {pos}) and the matching
// distances. Adaptive refinement policies use them to decide which
// neighboring bin to grow or merge toward.
func BoxDistances(positions []int, intervalLength float64, numIntervals int, distToLower, distToUpper []float64) ([][]int, [][]float64, error) {
	if numIntervals < 1 {
		return nil, nil, fmt.Errorf("%w: numIntervals = %d, must be >= 1", ErrInvalidGridParameter, numIntervals)
	}
	if intervalLength <= 0 {
		return nil, nil, fmt.Errorf("%w: intervalLength = %v, must be > 0", ErrInvalidGridParameter, intervalLength)
	}
	if len(distToLower) != len(positions) || len(distToUpper) != len(positions) {
		return nil, nil, fmt.Errorf("%w: positions, distToLower and distToUpper must have equal length, got %d/%d/%d",
			ErrBadShape, len(positions), len(distToLower), len(distToUpper))
	}

	n := len(positions)
	targets := make([][]int, n)
	dists := make([][]float64, n)
	for i, pos := range positions {
		trow := make([]int, 0, numIntervals-1)
		drow := make([]float64, 0, numIntervals-1)
		for target := 1; target <= numIntervals; target++ {
			if target == pos {
				continue
			}
			offset := (math.Abs(float64(target-pos)) - 1) * intervalLength
			if target < pos {
				drow = append(drow, distToLower[i]+offset)
			} else {
				drow = append(drow, distToUpper[i]+offset)
			}
			trow = append(trow, target)
		}
		targets[i] = trow
		dists[i] = drow
	}
	return targets, dists, nil
}
