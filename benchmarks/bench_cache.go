// Package benchmarks compares square counting on the primitive point table
// against the same algorithm on Go's built-in map.
package benchmarks

import (
	"fmt"
	"sync"

	"github.com/priyakdey/countsquares"
	"github.com/priyakdey/countsquares/internal/pointgen"
)

// Input sizes, small to large.
var benchSizes = []int{24, 32, 40, 48, 56, 64, 128, 256, 512, 1024, 2048, 4096}

var (
	cacheMu     sync.Mutex
	pointsCache = make(map[string][]countsquares.Point)
)

// getCachedPoints returns generated points, creating them if needed.
// Generating large random inputs is slower than the smaller counts, so
// inputs are shared across benchmarks.
func getCachedPoints(dist pointgen.Distribution, n int) ([]countsquares.Point, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	key := fmt.Sprintf("%v_%d", dist, n)
	if pts, ok := pointsCache[key]; ok {
		return pts, nil
	}

	pts, err := pointgen.Generate(dist, n, pointgen.DefaultBound, 42)
	if err != nil {
		return nil, err
	}
	pointsCache[key] = pts
	return pts, nil
}

// countWithMap is the diagonal algorithm on map[int64]struct{}. It exists
// only as a baseline for the benchmarks.
func countWithMap(points []countsquares.Point) int32 {
	set := make(map[int64]struct{}, 2*len(points))
	for _, p := range points {
		set[countsquares.PackKey(2*int64(p.X), 2*int64(p.Y))] = struct{}{}
	}

	var tally int64
	for i := 0; i < len(points)-1; i++ {
		x1, y1 := int64(points[i].X), int64(points[i].Y)
		for j := i + 1; j < len(points); j++ {
			x2, y2 := int64(points[j].X), int64(points[j].Y)

			if _, ok := set[countsquares.PackKey(x1+x2+y1-y2, y1+y2+x2-x1)]; !ok {
				continue
			}
			if _, ok := set[countsquares.PackKey(x1+x2-y1+y2, y1+y2-x2+x1)]; ok {
				tally++
			}
		}
	}
	return int32(tally / 2)
}

func formatSize(n int) string {
	switch {
	case n >= 1_000:
		return fmt.Sprintf("%dk", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
