package mapper

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// The parallel variants split one axis of work into contiguous chunks,
// one goroutine per chunk, each writing only its own pre-sized output
// slots. No locking: every chunk reads immutable input and owns a disjoint
// output range. Results are identical to the sequential functions; only
// execution order differs. Each variant falls back to its sequential
// function when numWorkers <= 1.

// DisjointIndexParallel computes DisjointIndexWith across numWorkers
// goroutines, decomposed along points.
func DisjointIndexParallel(points, bounds [][]float64, cfg IndexConfig, numWorkers int) ([]int, error) {
	if numWorkers <= 1 || len(points) <= 1 {
		return DisjointIndexWith(points, bounds, cfg)
	}
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
	var g errgroup.Group
	for _, c := range chunks(len(points), numWorkers) {
		c := c
		g.Go(func() error {
			for p := c.start; p < c.end; p++ {
				res[p] = assignPoint(points[p], bounds, cfg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// BuildIsoAlignedCoverParallel computes BuildIsoAlignedCoverWith across
// numWorkers goroutines, decomposed along level sets.
func BuildIsoAlignedCoverParallel(points, bounds [][]float64, cfg IsoAlignedConfig, numWorkers int) ([]LevelSet, error) {
	if numWorkers <= 1 || len(bounds) <= 1 {
		return BuildIsoAlignedCoverWith(points, bounds, cfg)
	}
	d, err := boundsDims(bounds)
	if err != nil {
		return nil, err
	}
	if err := pointDims(points, d); err != nil {
		return nil, err
	}

	sets := make([]LevelSet, len(bounds))
	var g errgroup.Group
	for _, c := range chunks(len(bounds), numWorkers) {
		c := c
		g.Go(func() error {
			for i := c.start; i < c.end; i++ {
				sets[i] = isoLevelSet(points, boundsRow(bounds[i]), cfg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// IntersectCoversParallel computes IntersectCovers across numWorkers
// goroutines, decomposed along cover1. Per-bin pair lists are assembled
// back into cover-1-major order after the workers finish, so the output is
// identical to the sequential scan.
func IntersectCoversParallel(cover1, cover2 []Box, numWorkers int) ([][2]int, error) {
	if numWorkers <= 1 || len(cover1) <= 1 {
		return IntersectCovers(cover1, cover2)
	}
	if err := checkCoverDims(cover1, cover2); err != nil {
		return nil, err
	}

	perBin := make([][]int, len(cover1))
	var g errgroup.Group
	for _, c := range chunks(len(cover1), numWorkers) {
		c := c
		g.Go(func() error {
			for i := c.start; i < c.end; i++ {
				for j := range cover2 {
					if cover1[i].Intersects(cover2[j]) {
						perBin[i] = append(perBin[i], j)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pairs := make([][2]int, 0, max(len(cover1), len(cover2)))
	for i, js := range perBin {
		for _, j := range js {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs, nil
}

type chunk struct{ start, end int }

// chunks splits n units of work into up to numWorkers contiguous ranges.
func chunks(n, numWorkers int) []chunk {
	per := (n + numWorkers - 1) / numWorkers
	cs := make([]chunk, 0, numWorkers)
	for start := 0; start < n; start += per {
		cs = append(cs, chunk{start: start, end: min(start+per, n)})
	}
	return cs
}
