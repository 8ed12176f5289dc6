// Package mapper implements the geometric binning kernel of a Mapper-style
// topological data analysis pipeline.
//
// Given a point cloud projected into a low-dimensional filter space, the
// package partitions that space into a cover of possibly overlapping
// axis-aligned boxes (level sets), assigns points to the bins containing
// them, and computes intersection relationships between bins, both within
// one cover and across two differently parameterized covers of the same
// space.
//
// Building a fixed overlapping grid cover and its memberships:
//
//	grid := mapper.FixedGrid{
//		NumIntervals: []int{5},
//		Overlap:      0.2,
//		FilterMin:    []float64{0},
//		FilterLen:    []float64{10},
//	}
//	sets, err := mapper.BuildFixedCover(filterValues, indexSet, grid)
//	// sets[i].Bounds is bin i's box, sets[i].Points its member point indices
//
// Assigning points to a disjoint cover:
//
//	ids, err := mapper.DisjointIndex(points, bounds)
//	// ids[p] is the 1-based bin id of point p, or -1 if no bin contains it
//
// Relating two covers and compacting the result into adjacency lists:
//
//	pairs, err := mapper.IntersectCovers(cover1, cover2)
//	adj := mapper.BuildAdjacency(pairs)
//
// All operations are synchronous batch computations over in-memory slices
// with no shared mutable state; the *Parallel variants fan the same
// computations out across worker goroutines with identical output.
//
// Clustering within bins, graph layout, and persistence are outside this
// package: it only computes bins, memberships, and inter-bin relationships.
package mapper
