package countsquares

import "fmt"

// Point is a 2D integer point.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// InRange reports whether both coordinates are within
// [MinCoordinate, MaxCoordinate].
func (p Point) InRange() bool {
	return p.X >= MinCoordinate && p.X <= MaxCoordinate &&
		p.Y >= MinCoordinate && p.Y <= MaxCoordinate
}

// PackKey packs two coordinates into one key: x in the high 32 bits and y
// in the low 32 bits. Both must fit in an int32 for the key to be unique.
func PackKey(x, y int64) int64 {
	return x<<32 ^ y&0xFFFFFFFF
}

// UnpackKey is the inverse of PackKey.
func UnpackKey(key int64) (x, y int32) {
	return int32(key >> 32), int32(uint32(key))
}

// scaledKey returns the key of p with both coordinates doubled, the form in
// which points are stored in the lookup table.
func scaledKey(p Point) int64 {
	return PackKey(2*int64(p.X), 2*int64(p.Y))
}
