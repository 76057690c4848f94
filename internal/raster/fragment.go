package raster

// ScreenVertex is one corner of a screen-space primitive: pixel-space
// position, depth in [0,1], and the attributes interpolated across it.
// Pixel (x, y) covers [x, x+1)×[y, y+1); its center is (x+0.5, y+0.5).
type ScreenVertex struct {
	X, Y  float64
	Depth float64
	Color [4]float64 // RGBA in [0,1]
	U, V  float64
}

// Fragment is a candidate pixel produced while rasterizing one primitive.
// Created and consumed within a single draw; never persisted.
type Fragment struct {
	X, Y  int
	Depth float64
	Color [4]float64
	U, V  float64
}

// EmitFunc receives fragments. For a given primitive the sequence is
// finite and deterministic: identical inputs produce identical
// fragments in identical order.
type EmitFunc func(Fragment)
