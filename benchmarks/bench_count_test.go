package benchmarks

import (
	"fmt"
	"testing"

	"github.com/priyakdey/countsquares"
	"github.com/priyakdey/countsquares/internal/pointgen"
)

// TestMapBaselineAgrees keeps the baseline honest.
func TestMapBaselineAgrees(t *testing.T) {
	for _, dist := range []pointgen.Distribution{pointgen.Grid, pointgen.Random} {
		for _, n := range []int{24, 64, 256} {
			pts, err := getCachedPoints(dist, n)
			if err != nil {
				t.Fatal(err)
			}
			got, want := countWithMap(pts), countsquares.Count(pts)
			if got != want {
				t.Errorf("%v n=%d: map baseline %d, Count %d", dist, n, got, want)
			}
		}
	}
}

// BenchmarkCountSquares compares the primitive table with Go's map.
// Run with: go test -bench=BenchmarkCountSquares -run=^$ ./benchmarks/
func BenchmarkCountSquares(b *testing.B) {
	for _, dist := range []pointgen.Distribution{pointgen.Random, pointgen.Grid} {
		for _, n := range benchSizes {
			pts, err := getCachedPoints(dist, n)
			if err != nil {
				b.Fatal(err)
			}
			name := fmt.Sprintf("%v_%s", dist, formatSize(n))

			b.Run(name+"/FastSet", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					countsquares.Count(pts)
				}
			})
			b.Run(name+"/Counter", func(b *testing.B) {
				c := countsquares.NewCounter()
				defer c.Close()
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					c.Count(pts)
				}
			})
			b.Run(name+"/GoMap", func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					countWithMap(pts)
				}
			})
		}
	}
}

// BenchmarkCountSquaresMapped measures the memory mapped table on the
// largest inputs.
func BenchmarkCountSquaresMapped(b *testing.B) {
	for _, dist := range []pointgen.Distribution{pointgen.Random, pointgen.Grid} {
		pts, err := getCachedPoints(dist, 4096)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(dist.String(), func(b *testing.B) {
			c := countsquares.NewCounter()
			defer c.Close()
			if err := c.SetMmapThreshold(1024); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Count(pts)
			}
		})
	}
}
