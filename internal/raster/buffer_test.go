package raster

import (
	"errors"
	"testing"
)

func TestResizeInvalidDimensions(t *testing.T) {
	table := [][2]int{
		{0, 4},
		{4, 0},
		{-1, 3},
		{3, -1},
		{0, 0},
	}
	for _, dims := range table {
		if _, err := NewFrameBuffer(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewFrameBuffer(%d, %d): expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}

	fb, err := NewFrameBuffer(8, 6)
	if err != nil {
		t.Fatalf("NewFrameBuffer(8, 6): %v", err)
	}
	if err := fb.Resize(-1, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Resize(-1, 5): expected ErrInvalidDimensions, got %v", err)
	}
	if fb.Width != 8 || fb.Height != 6 {
		t.Fatalf("failed resize changed dimensions: got %dx%d, expected 8x6", fb.Width, fb.Height)
	}
	if len(fb.Color) != 8*6*4 || len(fb.Depth) != 8*6 {
		t.Fatalf("failed resize changed plane sizes")
	}
}

func TestClearReadback(t *testing.T) {
	table := [][2]int{
		{1, 1},
		{4, 4},
		{3, 5},
	}
	c := RGBA{10, 20, 30, 255}
	for _, dims := range table {
		w, h := dims[0], dims[1]
		fb, err := NewFrameBuffer(w, h)
		if err != nil {
			t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
		}
		fb.Clear(c, 0.25)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if got := fb.At(x, y); got != c {
					t.Fatalf("%dx%d: pixel (%d,%d) = %v, expected %v", w, h, x, y, got, c)
				}
				if got := fb.DepthAt(x, y); got != 0.25 {
					t.Fatalf("%dx%d: depth (%d,%d) = %v, expected 0.25", w, h, x, y, got)
				}
			}
		}
	}
}

func TestResizeInitializesFarDepth(t *testing.T) {
	fb, err := NewFrameBuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := fb.DepthAt(x, y); got != FarDepth {
				t.Fatalf("depth (%d,%d) = %v, expected FarDepth", x, y, got)
			}
		}
	}
}

func TestOutOfBoundsAccessIgnored(t *testing.T) {
	fb, err := NewFrameBuffer(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(RGBA{1, 2, 3, 4}, 0.5)

	// None of these may panic or modify the planes.
	fb.SetPixel(-1, 0, RGBA{9, 9, 9, 9})
	fb.SetPixel(0, -1, RGBA{9, 9, 9, 9})
	fb.SetPixel(4, 0, RGBA{9, 9, 9, 9})
	fb.SetPixel(0, 4, RGBA{9, 9, 9, 9})
	fb.SetDepth(-1, -1, 0)
	fb.SetDepth(4, 4, 0)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != (RGBA{1, 2, 3, 4}) {
				t.Fatalf("out-of-bounds write leaked into (%d,%d): %v", x, y, got)
			}
			if got := fb.DepthAt(x, y); got != 0.5 {
				t.Fatalf("out-of-bounds depth write leaked into (%d,%d): %v", x, y, got)
			}
		}
	}

	if got := fb.At(-1, 2); got != (RGBA{}) {
		t.Fatalf("out-of-range At = %v, expected zero value", got)
	}
	if got := fb.DepthAt(9, 9); got != 0 {
		t.Fatalf("out-of-range DepthAt = %v, expected 0", got)
	}
}

func TestBlitViewAndSnapshot(t *testing.T) {
	fb, err := NewFrameBuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetPixel(2, 1, RGBA{200, 100, 50, 255})

	view := fb.BlitView()
	if view.Width != 3 || view.Height != 2 || view.Stride != 12 {
		t.Fatalf("view geometry: %dx%d stride %d", view.Width, view.Height, view.Stride)
	}
	off := 1*view.Stride + 2*4
	if view.Pix[off] != 200 || view.Pix[off+1] != 100 || view.Pix[off+2] != 50 {
		t.Fatalf("view pixel mismatch: %v", view.Pix[off:off+4])
	}

	img := fb.ToNRGBA()
	if got := img.NRGBAAt(2, 1); got.R != 200 || got.G != 100 || got.B != 50 || got.A != 255 {
		t.Fatalf("snapshot pixel mismatch: %v", got)
	}

	// The snapshot is a copy; later framebuffer writes must not show up.
	fb.SetPixel(2, 1, RGBA{1, 1, 1, 1})
	if got := img.NRGBAAt(2, 1); got.R != 200 {
		t.Fatalf("snapshot aliases the framebuffer")
	}
}
