package mapper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const floatTol = 1e-12

func TestNewBox_Valid(t *testing.T) {
	b, err := NewBox([]float64{0, 1}, []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Dims())
}

func TestNewBox_MinAboveMax(t *testing.T) {
	_, err := NewBox([]float64{0, 4}, []float64{2, 3})
	require.ErrorIs(t, err, ErrBadShape)
}

func TestNewBox_LengthMismatch(t *testing.T) {
	_, err := NewBox([]float64{0}, []float64{2, 3})
	require.ErrorIs(t, err, ErrBadShape)
}

func TestBoxContains_InclusiveBounds(t *testing.T) {
	b := Box{Min: []float64{0, 0}, Max: []float64{1, 1}}
	assert.True(t, b.Contains([]float64{0, 0}, 0))
	assert.True(t, b.Contains([]float64{1, 1}, 0))
	assert.True(t, b.Contains([]float64{0.5, 0.25}, 0))
	assert.False(t, b.Contains([]float64{1.5, 0.5}, 0))
	assert.False(t, b.Contains([]float64{0.5, -0.5}, 0))
}

func TestBoxContains_ToleranceSlack(t *testing.T) {
	b := Box{Min: []float64{0}, Max: []float64{1}}
	justAbove := math.Nextafter(1, 2)
	justBelow := -1e-17

	assert.False(t, b.Contains([]float64{justAbove}, 0))
	assert.False(t, b.Contains([]float64{justBelow}, 0))
	assert.True(t, b.Contains([]float64{justAbove}, defaultTolerance))
	// The slack applies on the lower side as well.
	assert.True(t, b.Contains([]float64{justBelow}, defaultTolerance))
}

func TestBoxIntersects_Overlap(t *testing.T) {
	a := Box{Min: []float64{0, 0}, Max: []float64{2, 2}}
	b := Box{Min: []float64{1, 1}, Max: []float64{3, 3}}
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}

func TestBoxIntersects_SharedBoundary(t *testing.T) {
	// Closed intervals: touching boxes intersect.
	a := Box{Min: []float64{0}, Max: []float64{1}}
	b := Box{Min: []float64{1}, Max: []float64{2}}
	assert.True(t, a.Intersects(b))
}

func TestBoxIntersects_Disjoint(t *testing.T) {
	a := Box{Min: []float64{0, 0}, Max: []float64{1, 1}}
	b := Box{Min: []float64{2, 0}, Max: []float64{3, 1}}
	assert.False(t, a.Intersects(b))
	// Overlap in one dimension only is not an intersection.
	c := Box{Min: []float64{0.5, 5}, Max: []float64{0.75, 6}}
	assert.False(t, a.Intersects(c))
}

func TestBoxesFromMatrix_RoundTrip(t *testing.T) {
	m := mat.NewDense(2, 4, []float64{
		0, 0, 1, 1,
		2, 3, 4, 5,
	})
	cover, err := BoxesFromMatrix(m)
	require.NoError(t, err)
	require.Len(t, cover, 2)
	assert.Equal(t, []float64{0, 0}, cover[0].Min)
	assert.Equal(t, []float64{1, 1}, cover[0].Max)
	assert.Equal(t, []float64{2, 3}, cover[1].Min)
	assert.Equal(t, []float64{4, 5}, cover[1].Max)
}

func TestBoxesFromMatrix_OddWidth(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{0, 1, 2})
	_, err := BoxesFromMatrix(m)
	require.ErrorIs(t, err, ErrBadShape)
}

func TestPointsFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	points := PointsFromMatrix(m)
	require.Len(t, points, 2)
	assert.Equal(t, []float64{1, 2}, points[0])
	assert.Equal(t, []float64{3, 4}, points[1])
}
