package mapper

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noValue = -1

func TestCompactCandidates_Basic(t *testing.T) {
	table := [][]int{
		{1, 2, 3},
		{2, 3, noValue},
		{3, noValue, noValue},
	}
	edges := CompactCandidates(table, noValue)
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 3}}, edges)
}

func TestCompactCandidates_RowMajorOrder(t *testing.T) {
	table := [][]int{
		{5, 9, noValue, 7},
		{6, noValue, 8, noValue},
	}
	edges := CompactCandidates(table, noValue)
	assert.Equal(t, [][2]int{{5, 9}, {5, 7}, {6, 8}}, edges)
}

func TestCompactCandidates_CountAndNoSentinel(t *testing.T) {
	// The edge list contains exactly the non-sentinel candidates and never
	// the sentinel itself.
	r := rand.New(rand.NewSource(17))
	table := make([][]int, 50)
	want := 0
	for i := range table {
		row := make([]int, 6)
		row[0] = i + 1
		for c := 1; c < len(row); c++ {
			if r.Float64() < 0.4 {
				row[c] = noValue
			} else {
				row[c] = r.Intn(50) + 1
				want++
			}
		}
		table[i] = row
	}

	edges := CompactCandidates(table, noValue)
	assert.Len(t, edges, want)
	for _, e := range edges {
		assert.NotEqual(t, noValue, e[1])
	}
}

func TestCompactCandidates_AllSentinel(t *testing.T) {
	table := [][]int{{1, noValue, noValue}, {2, noValue, noValue}}
	assert.Empty(t, CompactCandidates(table, noValue))
}

func TestBuildAdjacency_Basic(t *testing.T) {
	adj := BuildAdjacency([][2]int{{1, 2}, {1, 3}, {2, 3}})
	want := map[int][]int{1: {2, 3}, 2: {3}}
	assert.Empty(t, cmp.Diff(want, adj))
}

func TestBuildAdjacency_PreservesEdgeOrderPerSource(t *testing.T) {
	adj := BuildAdjacency([][2]int{{4, 9}, {2, 1}, {4, 3}, {4, 1}})
	assert.Equal(t, []int{9, 3, 1}, adj[4])
	assert.Equal(t, []int{1}, adj[2])
}

func TestBuildAdjacency_SinklessSourcesAbsent(t *testing.T) {
	// Bin 3 only ever appears as a destination: no key for it.
	adj := BuildAdjacency([][2]int{{1, 3}, {2, 3}})
	_, ok := adj[3]
	assert.False(t, ok)
}

func TestBuildAdjacency_Empty(t *testing.T) {
	adj := BuildAdjacency(nil)
	require.NotNil(t, adj)
	assert.Empty(t, adj)
}

func TestAdjacencySources_Ascending(t *testing.T) {
	adj := BuildAdjacency([][2]int{{7, 1}, {2, 1}, {5, 2}, {2, 4}})
	assert.Equal(t, []int{2, 5, 7}, AdjacencySources(adj))
}

func TestFindFirstEqual(t *testing.T) {
	xs := []int{4, 2, 7, 2}
	assert.Equal(t, 1, FindFirstEqual(xs, 2))
	assert.Equal(t, 0, FindFirstEqual(xs, 4))
	assert.Equal(t, -1, FindFirstEqual(xs, 9))
	assert.Equal(t, -1, FindFirstEqual(nil, 1))
}
