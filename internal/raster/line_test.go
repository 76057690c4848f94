package raster

import (
	"math"
	"reflect"
	"testing"
)

func collectLine(a, b ScreenVertex, w, h int) []Fragment {
	var frags []Fragment
	Line(a, b, w, h, func(f Fragment) { frags = append(frags, f) })
	return frags
}

func TestLineHorizontal(t *testing.T) {
	a := sv(0.5, 0.5, 0, [4]float64{1, 1, 1, 1})
	b := sv(3.5, 0.5, 1, [4]float64{1, 1, 1, 1})
	frags := collectLine(a, b, 4, 4)

	if len(frags) != 4 {
		t.Fatalf("emitted %d fragments, expected 4: %+v", len(frags), frags)
	}
	for i, f := range frags {
		if f.X != i || f.Y != 0 {
			t.Fatalf("fragment %d at (%d,%d), expected (%d,0)", i, f.X, f.Y, i)
		}
		want := float64(i) / 3
		if math.Abs(f.Depth-want) > 1e-12 {
			t.Fatalf("fragment %d depth %v, expected %v", i, f.Depth, want)
		}
	}
}

func TestLineDiagonal(t *testing.T) {
	a := sv(0.5, 0.5, 0, [4]float64{1, 1, 1, 1})
	b := sv(2.5, 2.5, 0, [4]float64{1, 1, 1, 1})
	frags := collectLine(a, b, 4, 4)

	expected := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	if len(frags) != len(expected) {
		t.Fatalf("emitted %d fragments, expected %d", len(frags), len(expected))
	}
	for i, f := range frags {
		if f.X != expected[i][0] || f.Y != expected[i][1] {
			t.Fatalf("fragment %d at (%d,%d), expected %v", i, f.X, f.Y, expected[i])
		}
	}
}

func TestLineZeroLength(t *testing.T) {
	a := sv(1.5, 1.5, 0, [4]float64{1, 1, 1, 1})
	if frags := collectLine(a, a, 4, 4); len(frags) != 0 {
		t.Fatalf("zero-length line emitted %d fragments, expected 0", len(frags))
	}
}

func TestLineBoundaryTieBreaksTowardLargerIndex(t *testing.T) {
	// Coordinates exactly on pixel boundaries land in the pixel with
	// the larger index.
	a := sv(1.0, 0.5, 0, [4]float64{1, 1, 1, 1})
	b := sv(3.0, 0.5, 0, [4]float64{1, 1, 1, 1})
	frags := collectLine(a, b, 8, 8)

	expected := [][2]int{{1, 0}, {2, 0}, {3, 0}}
	if len(frags) != len(expected) {
		t.Fatalf("emitted %d fragments, expected %d: %+v", len(frags), len(expected), frags)
	}
	for i, f := range frags {
		if f.X != expected[i][0] || f.Y != expected[i][1] {
			t.Fatalf("fragment %d at (%d,%d), expected %v", i, f.X, f.Y, expected[i])
		}
	}
}

func TestLineClippedToViewport(t *testing.T) {
	a := sv(-2.5, 0.5, 0, [4]float64{1, 1, 1, 1})
	b := sv(2.5, 0.5, 0, [4]float64{1, 1, 1, 1})
	frags := collectLine(a, b, 2, 1)

	expected := [][2]int{{0, 0}, {1, 0}}
	if len(frags) != len(expected) {
		t.Fatalf("emitted %d fragments, expected %d: %+v", len(frags), len(expected), frags)
	}
	for i, f := range frags {
		if f.X != expected[i][0] || f.Y != expected[i][1] {
			t.Fatalf("fragment %d at (%d,%d), expected %v", i, f.X, f.Y, expected[i])
		}
	}
}

func TestLineDeterministic(t *testing.T) {
	a := sv(0.2, 6.7, 0.1, [4]float64{1, 0, 0, 1})
	b := sv(7.9, 1.3, 0.8, [4]float64{0, 0, 1, 1})
	first := collectLine(a, b, 8, 8)
	second := collectLine(a, b, 8, 8)
	if len(first) == 0 {
		t.Fatal("line emitted no fragments")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different fragment sequences")
	}
}
