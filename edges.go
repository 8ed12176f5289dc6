package mapper

import "sort"

// CompactCandidates flattens a sentinel-padded candidate-neighbor table
// into a dense edge list. Each table row describes one bin: the first
// column is the bin's own id, the remaining columns are candidate neighbor
// ids padded with sentinel where the bin has fewer candidates than the
// table is wide. The result contains exactly the non-sentinel
// (source, candidate) pairs, rows in order, columns left to right.
//
// Whether a row's own-id column agrees with its row position is the
// caller's responsibility; it is not checked here.
func CompactCandidates(table [][]int, sentinel int) [][2]int {
	edges := make([][2]int, 0, len(table))
	for _, row := range table {
		if len(row) == 0 {
			continue
		}
		from := row[0]
		for _, to := range row[1:] {
			if to != sentinel {
				edges = append(edges, [2]int{from, to})
			}
		}
	}
	return edges
}

// BuildAdjacency compacts an edge list into a mapping from source bin id to
// its destination ids, preserving edge-list order per source. Sources with
// no outgoing edge are absent from the map; callers needing a dense
// representation must add missing keys themselves. Use AdjacencySources to
// walk the map in ascending source order.
func BuildAdjacency(edges [][2]int) map[int][]int {
	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	return adj
}

// AdjacencySources returns the source ids of an adjacency map in ascending
// order.
func AdjacencySources(adj map[int][]int) []int {
	ids := make([]int, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// FindFirstEqual returns the index of the first element of xs equal to v,
// or -1 if no element matches. Hosts use it to map a bin id back to its row
// in an id vector.
func FindFirstEqual(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
