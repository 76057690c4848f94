package raster

import (
	"errors"
	"fmt"
	"image"
)

// FarDepth is the sentinel a cleared depth plane starts at.
// Depth runs from 0 (near) to 1 (far); smaller wins.
const FarDepth = 1.0

// ErrInvalidDimensions is reported for non-positive framebuffer sizes.
var ErrInvalidDimensions = errors.New("invalid framebuffer dimensions")

// RGBA is one framebuffer color value, R G B A order.
type RGBA [4]uint8

// FrameBuffer holds the rendering target as flat slices for cache locality.
// The color and depth planes always have identical dimensions.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // depth per pixel, len = W*H
}

// NewFrameBuffer allocates a zeroed color plane and a far-depth plane.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	fb := &FrameBuffer{}
	if err := fb.Resize(w, h); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize reallocates both planes. On error the previous planes and
// dimensions are retained. Must only be called between frames.
func (fb *FrameBuffer) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: %w: %dx%d", ErrInvalidDimensions, w, h)
	}
	n := w * h
	fb.Width = w
	fb.Height = h
	fb.Color = make([]uint8, n*4)
	fb.Depth = make([]float64, n)
	for i := range fb.Depth {
		fb.Depth[i] = FarDepth
	}
	return nil
}

// Clear resets every pixel to the given color and depth.
func (fb *FrameBuffer) Clear(c RGBA, depth float64) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c[0]
		fb.Color[i+1] = c[1]
		fb.Color[i+2] = c[2]
		fb.Color[i+3] = c[3]
	}
	for i := range fb.Depth {
		fb.Depth[i] = depth
	}
}

// SetPixel writes one color value. Out-of-range coordinates are ignored:
// rasterization rounding at screen borders must never fault a frame.
func (fb *FrameBuffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c[0]
	fb.Color[i+1] = c[1]
	fb.Color[i+2] = c[2]
	fb.Color[i+3] = c[3]
}

// SetDepth writes one depth value. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) SetDepth(x, y int, d float64) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Depth[y*fb.Width+x] = d
}

// At returns the color at (x, y), or the zero value out of range.
func (fb *FrameBuffer) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return RGBA{}
	}
	i := (y*fb.Width + x) * 4
	return RGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// DepthAt returns the depth at (x, y), or 0 out of range.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0
	}
	return fb.Depth[y*fb.Width+x]
}

// BlitView is a read-only snapshot of the color plane for presentation.
// It aliases the framebuffer storage and stays valid until the next Clear.
type BlitView struct {
	Width  int
	Height int
	Stride int // bytes per row
	Pix    []uint8
}

// BlitView returns the presentation view of the current color plane.
func (fb *FrameBuffer) BlitView() *BlitView {
	return &BlitView{
		Width:  fb.Width,
		Height: fb.Height,
		Stride: fb.Width * 4,
		Pix:    fb.Color,
	}
}

// ToNRGBA copies the color plane into a standalone image for encoders.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
