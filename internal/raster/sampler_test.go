package raster

import (
	"image"
	"testing"
)

func solidTexture(w, h int, c [4]uint8) *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*tex.Stride + x*4
			tex.Pix[i] = c[0]
			tex.Pix[i+1] = c[1]
			tex.Pix[i+2] = c[2]
			tex.Pix[i+3] = c[3]
		}
	}
	return tex
}

func TestSampleTextureExactTexel(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	set := func(x, y int, c [4]uint8) {
		i := y*tex.Stride + x*4
		copy(tex.Pix[i:i+4], c[:])
	}
	set(0, 0, [4]uint8{255, 0, 0, 255})
	set(1, 0, [4]uint8{0, 255, 0, 255})
	set(0, 1, [4]uint8{0, 0, 255, 255})
	set(1, 1, [4]uint8{255, 255, 255, 255})

	if r, g, b, a := SampleTexture(tex, 0, 0); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("(0,0) = %d,%d,%d,%d, expected red", r, g, b, a)
	}

	// Halfway between the red and green texels.
	r, g, b, a := SampleTexture(tex, 0.5, 0)
	if r != 128 || g != 128 || b != 0 || a != 255 {
		t.Fatalf("(0.5,0) = %d,%d,%d,%d, expected 128,128,0,255", r, g, b, a)
	}
}

func TestSampleTextureWraps(t *testing.T) {
	tex := solidTexture(2, 2, [4]uint8{0, 0, 200, 255})
	table := [][2]float64{
		{0, 0},
		{2.0, 3.0},
		{-1.0, -2.0},
		{1.75, -0.25},
	}
	for _, uv := range table {
		if r, g, b, a := SampleTexture(tex, uv[0], uv[1]); r != 0 || g != 0 || b != 200 || a != 255 {
			t.Fatalf("uv %v = %d,%d,%d,%d, expected 0,0,200,255", uv, r, g, b, a)
		}
	}
}

func TestSampleTextureEmpty(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if r, g, b, a := SampleTexture(tex, 0.5, 0.5); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("empty texture sampled %d,%d,%d,%d, expected zeros", r, g, b, a)
	}
}
