package countsquares

// Coordinate domain
const (
	// MaxCoordinate is the largest coordinate magnitude accepted by
	// CountChecked. Corner arithmetic sums four of these, and the result
	// must still fit the 32-bit halves of a packed key.
	MaxCoordinate = 1<<29 - 1

	// MinCoordinate is the smallest accepted coordinate.
	MinCoordinate = -MaxCoordinate
)

// Table sizing
const (
	// DefaultLoadFactor is the occupancy at which the point table doubles.
	DefaultLoadFactor = 0.65

	// tableSizeMultiplier scales the point count into the table size hint.
	tableSizeMultiplier = 2
)
