package mapper

import (
	"fmt"
	"sort"
)

// IntersectCovers computes every pair of spatially intersecting bins
// between two covers of the same filter space: all (i, j), i over cover1,
// j over cover2, such that cover1[i] and cover2[j] overlap in every
// dimension. Ids are 0-based. Pairs are emitted in cover-1-major,
// cover-2-minor order, each (i, j) tested once.
//
// The scan is exhaustive, O(n1*n2*d); Mapper covers are typically tens to
// low thousands of bins. IntersectCoversSorted produces the identical pair
// list with a first-dimension prefilter for larger covers.
func IntersectCovers(cover1, cover2 []Box) ([][2]int, error) {
	if err := checkCoverDims(cover1, cover2); err != nil {
		return nil, err
	}
	// Every bin of one cover of the same space intersects at least one bin
	// of the other, so the larger cover size is a safe initial capacity.
	pairs := make([][2]int, 0, max(len(cover1), len(cover2)))
	for i := range cover1 {
		for j := range cover2 {
			if cover1[i].Intersects(cover2[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs, nil
}

// IntersectCoversSorted computes the same pair list as IntersectCovers,
// in the same order, but sorts cover2 by first-dimension minimum once and
// binary-searches away the cover2 bins lying entirely above each cover1
// bin before testing the remaining dimensions. Worthwhile when covers are
// large and spread along the first dimension.
func IntersectCoversSorted(cover1, cover2 []Box) ([][2]int, error) {
	if err := checkCoverDims(cover1, cover2); err != nil {
		return nil, err
	}

	order := make([]int, len(cover2))
	for j := range order {
		order[j] = j
	}
	sort.Slice(order, func(a, b int) bool {
		return cover2[order[a]].Min[0] < cover2[order[b]].Min[0]
	})
	mins := make([]float64, len(order))
	for k, j := range order {
		mins[k] = cover2[j].Min[0]
	}

	pairs := make([][2]int, 0, max(len(cover1), len(cover2)))
	js := make([]int, 0, len(cover2))
	for i := range cover1 {
		// Candidates are the sorted prefix with Min[0] <= cover1[i].Max[0];
		// everything beyond it fails the first-dimension overlap test.
		hi := sort.Search(len(mins), func(k int) bool { return mins[k] > cover1[i].Max[0] })
		js = js[:0]
		for _, j := range order[:hi] {
			if cover1[i].Intersects(cover2[j]) {
				js = append(js, j)
			}
		}
		sort.Ints(js)
		for _, j := range js {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs, nil
}

// checkCoverDims verifies that every box of both covers shares one
// dimensionality.
func checkCoverDims(cover1, cover2 []Box) error {
	d := -1
	for _, cover := range [2][]Box{cover1, cover2} {
		for _, b := range cover {
			if len(b.Min) != len(b.Max) {
				return fmt.Errorf("%w: box min has %d dimensions, max has %d", ErrBadShape, len(b.Min), len(b.Max))
			}
			if d == -1 {
				d = b.Dims()
			} else if b.Dims() != d {
				return fmt.Errorf("%w: covers mix %d- and %d-dimensional boxes", ErrDimensionMismatch, d, b.Dims())
			}
		}
	}
	return nil
}
