// Package geometry transforms model-space primitives into screen-space
// ones: model → clip space, mandatory near-plane clipping, perspective
// divide and viewport mapping against the current framebuffer size.
package geometry

import "github.com/compengalexxx/software-rasterizer/internal/mathutil"

// Vertex is one model-space corner of a primitive.
// Immutable once submitted for a draw call.
type Vertex struct {
	Position mathutil.Vec3
	Color    [4]float64 // RGBA in [0,1]
	U, V     float64
}

// Triangle is an ordered set of three vertices. Lifetime: one draw call.
type Triangle [3]Vertex

// Line is an ordered pair of vertices. Lifetime: one draw call.
type Line [2]Vertex

// Transform carries the matrices applied to one draw command.
type Transform struct {
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4
}

// IdentityTransform maps model space straight to clip space, which
// makes normalized device coordinates addressable directly.
func IdentityTransform() Transform {
	return Transform{
		Model:      mathutil.Mat4Identity(),
		View:       mathutil.Mat4Identity(),
		Projection: mathutil.Mat4Identity(),
	}
}

// MVP returns projection × view × model.
func (t Transform) MVP() mathutil.Mat4 {
	return mathutil.Mat4Mul(t.Projection, mathutil.Mat4Mul(t.View, t.Model))
}
