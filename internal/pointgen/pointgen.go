// Package pointgen generates point sets for exercising square counting.
package pointgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/priyakdey/countsquares"
	"github.com/priyakdey/countsquares/internal/fastset"
)

// Distribution selects how points are laid out.
type Distribution int

const (
	// Grid lays points on an integer lattice. Dense in squares; every
	// lookup tends to hit.
	Grid Distribution = iota

	// Random samples unique points uniformly from a bounded square. Few
	// squares; most lookups miss.
	Random
)

// DefaultBound is the coordinate bound used for Random points.
const DefaultBound = 100

// ErrTooManyPoints is returned when more unique points are requested than
// the bounded region holds.
var ErrTooManyPoints = errors.New("pointgen: too many points for bound")

func (d Distribution) String() string {
	switch d {
	case Grid:
		return "grid"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// ParseDistribution parses "grid" or "random", ignoring case.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(s) {
	case "grid":
		return Grid, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("pointgen: unknown distribution %q", s)
}

// Generate returns n points of the given distribution. bound and seed only
// apply to Random.
func Generate(d Distribution, n, bound int, seed int64) ([]countsquares.Point, error) {
	switch d {
	case Grid:
		return GridPoints(n), nil
	case Random:
		return RandomUnique(n, bound, seed)
	}
	return nil, fmt.Errorf("pointgen: unknown distribution %v", d)
}

// GridPoints returns n points in row-major order on a square lattice of
// side ceil(sqrt(n)) starting at the origin.
func GridPoints(n int) []countsquares.Point {
	if n <= 0 {
		return nil
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))
	pts := make([]countsquares.Point, 0, n)
	for i := 0; i < side && len(pts) < n; i++ {
		for j := 0; j < side && len(pts) < n; j++ {
			pts = append(pts, countsquares.Pt(int32(i), int32(j)))
		}
	}
	return pts
}

// RandomUnique returns n distinct points sampled uniformly from
// [-bound, bound]². The same seed always gives the same points.
func RandomUnique(n, bound int, seed int64) ([]countsquares.Point, error) {
	if n < 0 || bound < 0 || bound > countsquares.MaxCoordinate {
		return nil, fmt.Errorf("pointgen: invalid n=%d bound=%d", n, bound)
	}
	span := 2*bound + 1
	if int64(n) > int64(span)*int64(span) {
		return nil, fmt.Errorf("%w: n=%d bound=%d", ErrTooManyPoints, n, bound)
	}

	r := rand.New(rand.NewSource(seed))
	used := fastset.NewDefault(n)
	pts := make([]countsquares.Point, 0, n)
	for len(pts) < n {
		x := r.Intn(span) - bound
		y := r.Intn(span) - bound
		flat := int64(x+bound)*int64(span) + int64(y+bound)
		if !used.Add(flat) {
			continue
		}
		pts = append(pts, countsquares.Pt(int32(x), int32(y)))
	}
	return pts, nil
}
