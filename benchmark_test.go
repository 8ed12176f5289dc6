package mapper

import (
	"math/rand"
	"testing"
)

func benchmarkInputs(n, bins, d int) ([][]float64, [][]float64) {
	r := rand.New(rand.NewSource(99))
	points := randomPoints(r, n, d, 100)
	bounds := flatBounds(randomCover(r, bins, d, 100))
	return points, bounds
}

func BenchmarkDisjointIndex(b *testing.B) {
	points, bounds := benchmarkInputs(5000, 100, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DisjointIndex(points, bounds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDisjointIndexParallel(b *testing.B) {
	points, bounds := benchmarkInputs(5000, 100, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DisjointIndexParallel(points, bounds, DefaultIndexConfig(), 8); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntersectCovers(b *testing.B) {
	r := rand.New(rand.NewSource(98))
	c1 := randomCover(r, 500, 2, 100)
	c2 := randomCover(r, 500, 2, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := IntersectCovers(c1, c2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntersectCoversSorted(b *testing.B) {
	r := rand.New(rand.NewSource(98))
	c1 := randomCover(r, 500, 2, 100)
	c2 := randomCover(r, 500, 2, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := IntersectCoversSorted(c1, c2); err != nil {
			b.Fatal(err)
		}
	}
}
