package pointgen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/priyakdey/countsquares"
)

func TestGridPoints(t *testing.T) {
	got := GridPoints(7)
	want := []countsquares.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
		{X: 2, Y: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GridPoints(7) mismatch (-want +got):\n%s", diff)
	}

	if pts := GridPoints(0); len(pts) != 0 {
		t.Errorf("GridPoints(0) returned %d points", len(pts))
	}
	if pts := GridPoints(16); len(pts) != 16 || pts[15] != countsquares.Pt(3, 3) {
		t.Errorf("GridPoints(16) = %v", pts)
	}
}

func TestRandomUnique(t *testing.T) {
	pts, err := RandomUnique(500, 20, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 500 {
		t.Fatalf("expected 500 points, got %d", len(pts))
	}

	seen := make(map[countsquares.Point]bool)
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("duplicate point %v", p)
		}
		seen[p] = true
		if p.X < -20 || p.X > 20 || p.Y < -20 || p.Y > 20 {
			t.Fatalf("point %v outside bound", p)
		}
	}
}

func TestRandomUniqueDeterministic(t *testing.T) {
	a, err := RandomUnique(100, 50, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomUnique(100, 50, 7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different points (-first +second):\n%s", diff)
	}

	c, err := RandomUnique(100, 50, 8)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(a, c) {
		t.Error("different seeds gave identical points")
	}
}

func TestRandomUniqueFillsRegion(t *testing.T) {
	// Every point of a 3x3 region
	pts, err := RandomUnique(9, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 9 {
		t.Fatalf("expected 9 points, got %d", len(pts))
	}
	if n := countsquares.Count(pts); n != 6 {
		t.Errorf("expected 6 squares in a full 3x3 region, got %d", n)
	}
}

func TestRandomUniqueTooMany(t *testing.T) {
	_, err := RandomUnique(10, 1, 1)
	if !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("expected ErrTooManyPoints, got %v", err)
	}
	if _, err := RandomUnique(-1, 10, 1); err == nil {
		t.Error("expected error for negative n")
	}
}

func TestParseDistribution(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Distribution
	}{
		{"grid", Grid},
		{"GRID", Grid},
		{"random", Random},
		{"Random", Random},
	} {
		got, err := ParseDistribution(tt.in)
		if err != nil {
			t.Errorf("ParseDistribution(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDistribution(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if again, _ := ParseDistribution(got.String()); again != got {
			t.Errorf("String round trip failed for %v", got)
		}
	}

	if _, err := ParseDistribution("spiral"); err == nil {
		t.Error("expected error for unknown distribution")
	}
}

func TestGenerate(t *testing.T) {
	pts, err := Generate(Grid, 9, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(GridPoints(9), pts); diff != "" {
		t.Errorf("Generate(Grid) mismatch (-want +got):\n%s", diff)
	}

	pts, err = Generate(Random, 30, DefaultBound, 3)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := RandomUnique(30, DefaultBound, 3)
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("Generate(Random) mismatch (-want +got):\n%s", diff)
	}

	if _, err := Generate(Distribution(9), 1, 1, 1); err == nil {
		t.Error("expected error for unknown distribution")
	}
}
