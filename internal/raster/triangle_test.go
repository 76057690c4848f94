package raster

import (
	"math"
	"reflect"
	"testing"
)

func collectTriangle(v0, v1, v2 ScreenVertex, w, h int) []Fragment {
	var frags []Fragment
	Triangle(v0, v1, v2, w, h, func(f Fragment) { frags = append(frags, f) })
	return frags
}

func sv(x, y, depth float64, color [4]float64) ScreenVertex {
	return ScreenVertex{X: x, Y: y, Depth: depth, Color: color}
}

func TestTriangleCoverageTopLeftRule(t *testing.T) {
	// Right triangle (0,0),(3,0),(0,3): the hypotenuse x+y=3 passes
	// exactly through the centers of (2,0),(1,1),(0,2); it is neither a
	// top nor a left edge, so those pixels are out.
	frags := collectTriangle(
		sv(0, 0, 0.5, [4]float64{1, 0, 0, 1}),
		sv(3, 0, 0.5, [4]float64{1, 0, 0, 1}),
		sv(0, 3, 0.5, [4]float64{1, 0, 0, 1}),
		4, 4,
	)

	expected := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true}
	if len(frags) != len(expected) {
		t.Fatalf("covered %d pixels, expected %d: %+v", len(frags), len(expected), frags)
	}
	for _, f := range frags {
		if !expected[[2]int{f.X, f.Y}] {
			t.Fatalf("unexpected pixel (%d,%d)", f.X, f.Y)
		}
		if f.Depth != 0.5 {
			t.Fatalf("pixel (%d,%d) depth = %v, expected 0.5", f.X, f.Y, f.Depth)
		}
	}
}

func TestTriangleVertexOrderInvariance(t *testing.T) {
	v0 := sv(0, 0, 0.2, [4]float64{1, 0, 0, 1})
	v1 := sv(3, 0, 0.5, [4]float64{0, 1, 0, 1})
	v2 := sv(0, 3, 0.8, [4]float64{0, 0, 1, 1})

	perms := [][3]ScreenVertex{
		{v0, v1, v2},
		{v1, v2, v0},
		{v2, v0, v1},
		{v0, v2, v1},
		{v2, v1, v0},
		{v1, v0, v2},
	}

	ref := make(map[[2]int]Fragment)
	for _, f := range collectTriangle(v0, v1, v2, 8, 8) {
		ref[[2]int{f.X, f.Y}] = f
	}
	if len(ref) == 0 {
		t.Fatal("reference ordering covered no pixels")
	}

	for pi, p := range perms {
		frags := collectTriangle(p[0], p[1], p[2], 8, 8)
		if len(frags) != len(ref) {
			t.Fatalf("perm %d: %d pixels, expected %d", pi, len(frags), len(ref))
		}
		for _, f := range frags {
			want, ok := ref[[2]int{f.X, f.Y}]
			if !ok {
				t.Fatalf("perm %d: unexpected pixel (%d,%d)", pi, f.X, f.Y)
			}
			if math.Abs(f.Depth-want.Depth) > 1e-9 {
				t.Fatalf("perm %d: pixel (%d,%d) depth %v, expected %v", pi, f.X, f.Y, f.Depth, want.Depth)
			}
			for c := 0; c < 4; c++ {
				if math.Abs(f.Color[c]-want.Color[c]) > 1e-9 {
					t.Fatalf("perm %d: pixel (%d,%d) color %v, expected %v", pi, f.X, f.Y, f.Color, want.Color)
				}
			}
		}
	}
}

func TestTriangleSharedEdgeExactCoverage(t *testing.T) {
	// A 4×4 square split along its diagonal: every pixel must be
	// covered exactly once across the two triangles.
	col := [4]float64{1, 1, 1, 1}
	a0, a1, a2 := sv(0, 0, 0, col), sv(4, 0, 0, col), sv(4, 4, 0, col)
	b0, b1, b2 := sv(0, 0, 0, col), sv(4, 4, 0, col), sv(0, 4, 0, col)

	counts := make(map[[2]int]int)
	for _, f := range collectTriangle(a0, a1, a2, 4, 4) {
		counts[[2]int{f.X, f.Y}]++
	}
	for _, f := range collectTriangle(b0, b1, b2, 4, 4) {
		counts[[2]int{f.X, f.Y}]++
	}

	if len(counts) != 16 {
		t.Fatalf("covered %d distinct pixels, expected 16", len(counts))
	}
	for px, n := range counts {
		if n != 1 {
			t.Fatalf("pixel %v covered %d times", px, n)
		}
	}
}

func TestTriangleSharedVerticalEdge(t *testing.T) {
	// Two triangles meeting on the vertical line x=1.5, which passes
	// exactly through the centers of column x=1. Those ties must go to
	// exactly one side: no gap, no double coverage.
	col := [4]float64{1, 1, 1, 1}
	left := collectTriangle(sv(1.5, 0, 0, col), sv(1.5, 4, 0, col), sv(-2, 0, 0, col), 4, 4)
	right := collectTriangle(sv(1.5, 0, 0, col), sv(6, 0, 0, col), sv(1.5, 4, 0, col), 4, 4)

	counts := make(map[[2]int]int)
	for _, f := range left {
		counts[[2]int{f.X, f.Y}]++
	}
	for _, f := range right {
		counts[[2]int{f.X, f.Y}]++
	}
	for px, n := range counts {
		if n != 1 {
			t.Fatalf("pixel %v covered %d times", px, n)
		}
	}
	for y := 0; y < 4; y++ {
		if counts[[2]int{1, y}] != 1 {
			t.Fatalf("boundary pixel (1,%d) covered %d times, expected 1", y, counts[[2]int{1, y}])
		}
	}
}

func TestTriangleDegenerate(t *testing.T) {
	col := [4]float64{1, 1, 1, 1}
	table := []struct {
		name       string
		v0, v1, v2 ScreenVertex
	}{
		{"colinear", sv(0, 0, 0, col), sv(2, 2, 0, col), sv(4, 4, 0, col)},
		{"coincident", sv(1, 1, 0, col), sv(1, 1, 0, col), sv(1, 1, 0, col)},
		{"two coincident", sv(1, 1, 0, col), sv(1, 1, 0, col), sv(3, 2, 0, col)},
	}
	for _, tc := range table {
		if frags := collectTriangle(tc.v0, tc.v1, tc.v2, 8, 8); len(frags) != 0 {
			t.Fatalf("%s: emitted %d fragments, expected 0", tc.name, len(frags))
		}
	}
}

func TestTriangleInterpolation(t *testing.T) {
	// Triangle (0,0),(2,0),(0,2), depths 0/1/1: the center of pixel
	// (0,0) sits at barycentric (0.5, 0.25, 0.25), depth 0.5.
	frags := collectTriangle(
		sv(0, 0, 0, [4]float64{1, 0, 0, 1}),
		sv(2, 0, 1, [4]float64{0, 1, 0, 1}),
		sv(0, 2, 1, [4]float64{0, 0, 1, 1}),
		4, 4,
	)

	var found bool
	for _, f := range frags {
		if f.X == 0 && f.Y == 0 {
			found = true
			if math.Abs(f.Depth-0.5) > 1e-12 {
				t.Fatalf("depth = %v, expected 0.5", f.Depth)
			}
			want := [4]float64{0.5, 0.25, 0.25, 1}
			for c := 0; c < 4; c++ {
				if math.Abs(f.Color[c]-want[c]) > 1e-12 {
					t.Fatalf("color = %v, expected %v", f.Color, want)
				}
			}
		}
	}
	if !found {
		t.Fatal("pixel (0,0) not covered")
	}
}

func TestTriangleDeterministicOrder(t *testing.T) {
	v0 := sv(0.3, 0.1, 0.1, [4]float64{1, 0, 0, 1})
	v1 := sv(6.7, 1.2, 0.4, [4]float64{0, 1, 0, 1})
	v2 := sv(2.1, 7.9, 0.9, [4]float64{0, 0, 1, 1})

	first := collectTriangle(v0, v1, v2, 8, 8)
	second := collectTriangle(v0, v1, v2, 8, 8)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different fragment sequences")
	}

	// Row-major emission order.
	for i := 1; i < len(first); i++ {
		a, b := first[i-1], first[i]
		if b.Y < a.Y || (b.Y == a.Y && b.X <= a.X) {
			t.Fatalf("fragments out of row-major order: %v then %v", a, b)
		}
	}
}

func TestTriangleClampedToViewport(t *testing.T) {
	// A triangle far larger than the target: every emitted fragment
	// must stay in bounds and every pixel must be covered.
	col := [4]float64{1, 1, 1, 1}
	frags := collectTriangle(sv(-50, -50, 0, col), sv(100, -50, 0, col), sv(-50, 100, 0, col), 4, 4)
	seen := make(map[[2]int]bool)
	for _, f := range frags {
		if f.X < 0 || f.Y < 0 || f.X >= 4 || f.Y >= 4 {
			t.Fatalf("fragment out of bounds: (%d,%d)", f.X, f.Y)
		}
		seen[[2]int{f.X, f.Y}] = true
	}
	if len(seen) != 16 {
		t.Fatalf("covered %d pixels, expected all 16", len(seen))
	}
}
