package raster

import "math"

// Line emits one fragment per pixel along a screen-space segment using
// DDA stepping on the major axis. A coordinate exactly on the boundary
// between two pixels lands in the pixel with the larger index (x first,
// then y), so collinear segments sharing an endpoint meet without
// double-writing. Coincident endpoints are degenerate and emit nothing.
func Line(a, b ScreenVertex, clipW, clipH int, emit EmitFunc) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	inv := 1.0 / float64(steps)

	prevX, prevY := math.MinInt32, math.MinInt32
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		ix := int(math.Floor(a.X + dx*t))
		iy := int(math.Floor(a.Y + dy*t))
		if ix == prevX && iy == prevY {
			continue
		}
		prevX, prevY = ix, iy
		if ix < 0 || iy < 0 || ix >= clipW || iy >= clipH {
			continue
		}
		emit(Fragment{
			X:     ix,
			Y:     iy,
			Depth: a.Depth + (b.Depth-a.Depth)*t,
			Color: [4]float64{
				a.Color[0] + (b.Color[0]-a.Color[0])*t,
				a.Color[1] + (b.Color[1]-a.Color[1])*t,
				a.Color[2] + (b.Color[2]-a.Color[2])*t,
				a.Color[3] + (b.Color[3]-a.Color[3])*t,
			},
			U: a.U + (b.U-a.U)*t,
			V: a.V + (b.V-a.V)*t,
		})
	}
}
