package geometry

import (
	"github.com/compengalexxx/software-rasterizer/internal/mathutil"
	"github.com/compengalexxx/software-rasterizer/internal/raster"
)

// clipVertex is a vertex in homogeneous clip space with its attributes.
type clipVertex struct {
	pos   mathutil.Vec4
	color [4]float64
	u, v  float64
}

func toClip(v Vertex, mvp mathutil.Mat4) clipVertex {
	p := v.Position
	return clipVertex{
		pos:   mvp.MulVec4(mathutil.Vec4{p[0], p[1], p[2], 1}),
		color: v.Color,
		u:     v.U,
		v:     v.V,
	}
}

// nearDist is the signed distance to the near plane z = -w. Everything
// with a non-negative distance is in front of it; clipping on this
// plane guarantees w > 0 before the perspective divide.
func nearDist(p mathutil.Vec4) float64 {
	return p[2] + p[3]
}

// clipLerp interpolates the crossing point on edge a→b where the near
// plane is hit: t = da / (da - db).
func clipLerp(a, b clipVertex, t float64) clipVertex {
	return clipVertex{
		pos: a.pos.Lerp(b.pos, t),
		color: [4]float64{
			a.color[0] + (b.color[0]-a.color[0])*t,
			a.color[1] + (b.color[1]-a.color[1])*t,
			a.color[2] + (b.color[2]-a.color[2])*t,
			a.color[3] + (b.color[3]-a.color[3])*t,
		},
		u: a.u + (b.u-a.u)*t,
		v: a.v + (b.v-a.v)*t,
	}
}

// toScreen performs the perspective divide and the viewport mapping.
// Clip-space y points up, screen y points down. NDC depth [-1,1] is
// remapped to [0,1], smaller = nearer.
func toScreen(cv clipVertex, width, height int) raster.ScreenVertex {
	invW := 1.0 / cv.pos[3]
	ndcX := cv.pos[0] * invW
	ndcY := cv.pos[1] * invW
	ndcZ := cv.pos[2] * invW
	return raster.ScreenVertex{
		X:     (ndcX + 1) * 0.5 * float64(width),
		Y:     (1 - ndcY) * 0.5 * float64(height),
		Depth: (ndcZ + 1) * 0.5,
		Color: cv.color,
		U:     cv.u,
		V:     cv.v,
	}
}

// offscreenTri reports whether the triangle's screen bounding box
// misses the viewport entirely. Coordinates are float64, so far
// off-screen geometry cannot wrap or overflow; it is simply dropped.
func offscreenTri(sv [3]raster.ScreenVertex, width, height int) bool {
	minX, maxX := sv[0].X, sv[0].X
	minY, maxY := sv[0].Y, sv[0].Y
	for i := 1; i < 3; i++ {
		if sv[i].X < minX {
			minX = sv[i].X
		}
		if sv[i].X > maxX {
			maxX = sv[i].X
		}
		if sv[i].Y < minY {
			minY = sv[i].Y
		}
		if sv[i].Y > maxY {
			maxY = sv[i].Y
		}
	}
	return maxX < 0 || maxY < 0 || minX > float64(width) || minY > float64(height)
}

// TriangleToScreen runs one triangle through the geometry stage.
// Clipping against the near plane yields 0, 1 or 2 screen triangles,
// appended to dst (callers reuse the slice across submits). Triangles
// fully behind the near plane or fully outside the viewport contribute
// nothing.
func TriangleToScreen(tri Triangle, tf Transform, width, height int, dst [][3]raster.ScreenVertex) [][3]raster.ScreenVertex {
	mvp := tf.MVP()
	a := toClip(tri[0], mvp)
	b := toClip(tri[1], mvp)
	c := toClip(tri[2], mvp)
	da, db, dc := nearDist(a.pos), nearDist(b.pos), nearDist(c.pos)

	inside := 0
	if da >= 0 {
		inside++
	}
	if db >= 0 {
		inside++
	}
	if dc >= 0 {
		inside++
	}

	switch inside {
	case 3:
		return appendScreenTri(dst, a, b, c, width, height)
	case 0:
		return dst
	}

	// Rotate so the inside/outside split starts at a, preserving winding.
	for da < 0 || (inside == 2 && dc >= 0) {
		a, b, c = b, c, a
		da, db, dc = db, dc, da
	}

	if inside == 1 {
		// a in, b and c out: one smaller triangle.
		ab := clipLerp(a, b, da/(da-db))
		ac := clipLerp(a, c, da/(da-dc))
		return appendScreenTri(dst, a, ab, ac, width, height)
	}

	// a and b in, c out: the clipped quad splits into two triangles.
	bc := clipLerp(b, c, db/(db-dc))
	ac := clipLerp(a, c, da/(da-dc))
	dst = appendScreenTri(dst, a, b, bc, width, height)
	return appendScreenTri(dst, a, bc, ac, width, height)
}

func appendScreenTri(dst [][3]raster.ScreenVertex, a, b, c clipVertex, width, height int) [][3]raster.ScreenVertex {
	sv := [3]raster.ScreenVertex{
		toScreen(a, width, height),
		toScreen(b, width, height),
		toScreen(c, width, height),
	}
	if offscreenTri(sv, width, height) {
		return dst
	}
	return append(dst, sv)
}

// LineToScreen transforms and near-clips one line. ok is false when the
// line is fully behind the near plane or fully outside the viewport.
func LineToScreen(ln Line, tf Transform, width, height int) (out [2]raster.ScreenVertex, ok bool) {
	mvp := tf.MVP()
	a := toClip(ln[0], mvp)
	b := toClip(ln[1], mvp)
	da, db := nearDist(a.pos), nearDist(b.pos)

	switch {
	case da < 0 && db < 0:
		return out, false
	case da < 0:
		a = clipLerp(a, b, da/(da-db))
	case db < 0:
		b = clipLerp(b, a, db/(db-da))
	}

	out[0] = toScreen(a, width, height)
	out[1] = toScreen(b, width, height)

	minX := out[0].X
	maxX := out[1].X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY := out[0].Y
	maxY := out[1].Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if maxX < 0 || maxY < 0 || minX > float64(width) || minY > float64(height) {
		return out, false
	}
	return out, true
}
