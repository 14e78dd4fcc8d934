package countsquares

import "github.com/priyakdey/countsquares/internal/fastset"

// Count returns the number of squares, in any orientation, whose four
// corners are all in points.
//
// Every pair of points is tried as a diagonal. The two remaining corners
// are the diagonal rotated by ±90° about its midpoint:
//
//	P3 = ((x1+x2+(y1-y2))/2, (y1+y2+(x2-x1))/2)
//	P4 = ((x1+x2-(y1-y2))/2, (y1+y2-(x2-x1))/2)
//
// Points are stored doubled, so the numerators are looked up directly and
// nothing is ever divided. Each square has two diagonals and is found once
// through each.
//
// Points must be distinct and within [MinCoordinate, MaxCoordinate]; this
// is not checked. Use CountChecked for untrusted input.
//
// Runs in expected O(n²) time and O(n) space.
func Count(points []Point) int32 {
	set := fastset.NewDefault(tableSizeMultiplier * len(points))
	for _, p := range points {
		set.Add(scaledKey(p))
	}
	return countDiagonals(set, points)
}

// CountChecked is like Count but rejects input that Count would silently
// miscount: coordinates outside [MinCoordinate, MaxCoordinate] and repeated
// points.
func CountChecked(points []Point) (int32, error) {
	if err := checkRange(points); err != nil {
		return 0, err
	}
	set := fastset.NewDefault(tableSizeMultiplier * len(points))
	if err := populate(set, points); err != nil {
		return 0, err
	}
	return countDiagonals(set, points), nil
}

func checkRange(points []Point) error {
	for i, p := range points {
		if !p.InRange() {
			return newPointError(ErrCoordinateRange, i, p)
		}
	}
	return nil
}

// populate adds the scaled key of every point to set. A point whose key is
// already present is a duplicate.
func populate(set *fastset.Int64Set, points []Point) error {
	for i, p := range points {
		if !set.Add(scaledKey(p)) {
			return newPointError(ErrDuplicatePoint, i, p)
		}
	}
	return nil
}

// countDiagonals tries every unordered pair of points as a diagonal and
// returns the number of squares found. set must hold the scaled keys of
// points.
func countDiagonals(set *fastset.Int64Set, points []Point) int32 {
	var tally int64
	for i := 0; i < len(points)-1; i++ {
		x1, y1 := int64(points[i].X), int64(points[i].Y)
		for j := i + 1; j < len(points); j++ {
			x2, y2 := int64(points[j].X), int64(points[j].Y)

			sx, sy := x1+x2, y1+y2
			dx, dy := x2-x1, y1-y2

			if set.Contains(PackKey(sx+dy, sy+dx)) && set.Contains(PackKey(sx-dy, sy-dx)) {
				tally++
			}
		}
	}
	return int32(tally / 2)
}
