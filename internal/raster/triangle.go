package raster

import "math"

// Triangles with |signed area| below this emit nothing.
const degenerateArea = 1e-8

// edge is the signed parallelogram area (b-a)×(p-a). For a positively
// wound triangle the three per-pixel edge values are non-negative
// inside and sum to the triangle's doubled area, which makes them the
// unnormalized barycentric weights.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the directed edge a→b is a top or left edge
// of a positively wound triangle (screen coordinates, y down). Pixels
// whose center lands exactly on such an edge are counted as covered;
// on any other edge they are not, so triangles sharing an edge never
// double-rasterize nor leave a gap.
func topLeft(ax, ay, bx, by float64) bool {
	dy := by - ay
	if dy == 0 {
		return bx > ax // top edge runs toward +x
	}
	return dy < 0 // left edge runs toward -y
}

// Triangle walks the clamped bounding box of a screen-space triangle
// and emits one fragment for every pixel whose center is covered under
// the top-left fill rule. Depth, color and UV are interpolated with
// barycentric weights. Winding is normalized internally, so coverage
// and attribute values are invariant under vertex reordering.
// Fragments come out in row-major order. Zero allocations in the loop.
func Triangle(v0, v1, v2 ScreenVertex, clipW, clipH int, emit EmitFunc) {
	area := edge(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}
	if area < degenerateArea {
		return
	}
	invArea := 1.0 / area

	minX := int(math.Floor(math.Min(math.Min(v0.X, v1.X), v2.X)))
	maxX := int(math.Ceil(math.Max(math.Max(v0.X, v1.X), v2.X)))
	minY := int(math.Floor(math.Min(math.Min(v0.Y, v1.Y), v2.Y)))
	maxY := int(math.Ceil(math.Max(math.Max(v0.Y, v1.Y), v2.Y)))
	if minX < 0 {
		minX = 0
	}
	if maxX > clipW-1 {
		maxX = clipW - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > clipH-1 {
		maxY = clipH - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Edge inclusivity under the top-left rule, fixed per edge.
	in12 := topLeft(v1.X, v1.Y, v2.X, v2.Y)
	in20 := topLeft(v2.X, v2.Y, v0.X, v0.Y)
	in01 := topLeft(v0.X, v0.Y, v1.X, v1.Y)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edge(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edge(v0.X, v0.Y, v1.X, v1.Y, px, py)

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !in12) || (w1 == 0 && !in20) || (w2 == 0 && !in01) {
				continue
			}

			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			emit(Fragment{
				X:     x,
				Y:     y,
				Depth: b0*v0.Depth + b1*v1.Depth + b2*v2.Depth,
				Color: [4]float64{
					b0*v0.Color[0] + b1*v1.Color[0] + b2*v2.Color[0],
					b0*v0.Color[1] + b1*v1.Color[1] + b2*v2.Color[1],
					b0*v0.Color[2] + b1*v1.Color[2] + b2*v2.Color[2],
					b0*v0.Color[3] + b1*v1.Color[3] + b2*v2.Color[3],
				},
				U: b0*v0.U + b1*v1.U + b2*v2.U,
				V: b0*v0.V + b1*v1.V + b2*v2.V,
			})
		}
	}
}
