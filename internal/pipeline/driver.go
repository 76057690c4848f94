package pipeline

import (
	"image"

	"github.com/compengalexxx/software-rasterizer/internal/geometry"
	"github.com/compengalexxx/software-rasterizer/internal/raster"
)

// Driver runs the per-frame stage sequence. It exclusively owns the
// framebuffer for the duration of a frame; the presentation step only
// sees the read-only view returned by EndFrame. Single-threaded: one
// frame runs to completion once invoked.
type Driver struct {
	fb *raster.FrameBuffer

	// Scratch for clipped triangles, reused across submits.
	tris [][3]raster.ScreenVertex
}

// NewDriver allocates a driver with a framebuffer of the given size.
func NewDriver(width, height int) (*Driver, error) {
	fb, err := raster.NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &Driver{fb: fb}, nil
}

// Size returns the current framebuffer dimensions.
func (d *Driver) Size() (int, int) {
	return d.fb.Width, d.fb.Height
}

// Resize reallocates the framebuffer. Only valid between frames; on
// error the previous dimensions stay in effect.
func (d *Driver) Resize(width, height int) error {
	return d.fb.Resize(width, height)
}

// BeginFrame clears color to bg and depth to the far sentinel.
func (d *Driver) BeginFrame(bg raster.RGBA) {
	d.fb.Clear(bg, raster.FarDepth)
}

// Submit runs the full stage sequence for one draw command
// synchronously. Commands within a frame are processed strictly in
// submission order; with the depth test disabled the last submitted
// fragment wins, and wireframe-over-fill overlays rely on that.
func (d *Driver) Submit(cmd DrawCommand) {
	w, h := d.fb.Width, d.fb.Height
	emit := func(f raster.Fragment) { d.writeFragment(f, &cmd.State) }

	switch {
	case cmd.Triangle != nil:
		d.tris = geometry.TriangleToScreen(*cmd.Triangle, cmd.Transform, w, h, d.tris[:0])
		for _, sv := range d.tris {
			if cmd.State.Mode == Wireframe {
				raster.Line(sv[0], sv[1], w, h, emit)
				raster.Line(sv[1], sv[2], w, h, emit)
				raster.Line(sv[2], sv[0], w, h, emit)
			} else {
				raster.Triangle(sv[0], sv[1], sv[2], w, h, emit)
			}
		}
	case cmd.Line != nil:
		if sv, ok := geometry.LineToScreen(*cmd.Line, cmd.Transform, w, h); ok {
			raster.Line(sv[0], sv[1], w, h, emit)
		}
	}
}

// EndFrame finalizes the frame and exposes it for presentation. The
// view stays valid until the next BeginFrame.
func (d *Driver) EndFrame() *raster.BlitView {
	return d.fb.BlitView()
}

// Snapshot copies the current color plane into a standalone image,
// for encoders that outlive the frame.
func (d *Driver) Snapshot() *image.NRGBA {
	return d.fb.ToNRGBA()
}

// FrameBuffer exposes the owned framebuffer for inspection.
func (d *Driver) FrameBuffer() *raster.FrameBuffer {
	return d.fb
}
