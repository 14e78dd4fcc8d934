package countsquares

import "sort"

// bruteForceCount checks every four-point subset directly. O(n⁴); only for
// cross-checking Count on small inputs.
func bruteForceCount(points []Point) int32 {
	var count int32
	n := len(points)
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					if isSquare(points[i], points[j], points[k], points[l]) {
						count++
					}
				}
			}
		}
	}
	return count
}

// isSquare reports whether four points are the corners of a square: four
// equal non-zero sides, two equal diagonals, and diagonal² = 2·side².
func isSquare(p1, p2, p3, p4 Point) bool {
	// Local array keeps this re-entrant.
	dist := [6]int64{
		sqDist(p1, p2),
		sqDist(p1, p3),
		sqDist(p1, p4),
		sqDist(p2, p3),
		sqDist(p2, p4),
		sqDist(p3, p4),
	}
	sort.Slice(dist[:], func(a, b int) bool { return dist[a] < dist[b] })

	side, diag := dist[0], dist[4]
	if side == 0 {
		return false
	}
	return dist[0] == dist[1] && dist[1] == dist[2] && dist[2] == dist[3] &&
		dist[4] == dist[5] &&
		diag == 2*side
}

func sqDist(p, q Point) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	return dx*dx + dy*dy
}
