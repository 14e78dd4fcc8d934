// Package countsquares counts the squares, axis-aligned or rotated, that can
// be formed from four points of a set of distinct integer points.
//
// Counting treats every pair of points as a candidate diagonal and looks up
// the two remaining corners in an open-addressing hash set of packed 64-bit
// point keys. All arithmetic is exact integer arithmetic; lookups do not
// allocate.
//
// Basic usage:
//
//	n := countsquares.Count([]countsquares.Point{
//	    {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1},
//	})
//	// n == 1
//
// Count trusts its input. CountChecked rejects repeated points and
// coordinates beyond MaxCoordinate:
//
//	n, err := countsquares.CountChecked(points)
//	if countsquares.IsDuplicatePoint(err) {
//	    ...
//	}
//
// A Counter reuses its table across calls and must be owned by a single
// goroutine:
//
//	c := countsquares.NewCounter()
//	defer c.Close()
//	for _, batch := range batches {
//	    fmt.Println(c.Count(batch))
//	}
package countsquares
