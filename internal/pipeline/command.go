// Package pipeline orchestrates one frame: it accepts draw commands,
// runs each through the geometry stage, the rasterizer and the
// depth/visibility test, and owns the framebuffer until the frame is
// finalized for presentation.
package pipeline

import (
	"image"

	"github.com/compengalexxx/software-rasterizer/internal/geometry"
)

// Mode selects how a triangle is drawn.
type Mode uint8

const (
	// Fill rasterizes the triangle interior.
	Fill Mode = iota
	// Wireframe rasterizes the three edges as lines.
	Wireframe
)

// State is the render state attached to one draw command.
// Read-only during processing.
type State struct {
	Mode      Mode
	DepthTest bool
	// Texture, when set, is sampled at the fragment's UV and modulated
	// with the interpolated vertex color.
	Texture *image.NRGBA
}

// DrawCommand is one primitive plus its transform and render state.
// Exactly one of Triangle and Line is set.
type DrawCommand struct {
	Triangle  *geometry.Triangle
	Line      *geometry.Line
	Transform geometry.Transform
	State     State
}
