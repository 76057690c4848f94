// Package scene supplies per-frame draw lists to the pipeline. Scenes
// are the programmatic caller the core renders for; they build
// primitives, transforms and render state but never touch pixels.
package scene

import (
	"fmt"
	"image"

	"github.com/compengalexxx/software-rasterizer/internal/pipeline"
)

// Scene produces the draw commands for one frame.
type Scene interface {
	// Frame returns the draw list for time t (seconds since start) and
	// the target's aspect ratio. The returned commands are submitted in
	// order.
	Frame(t, aspect float64) []pipeline.DrawCommand
}

// ByName returns a built-in scene. tex may be nil; scenes that can use
// a texture apply it when present.
func ByName(name string, tex *image.NRGBA) (Scene, error) {
	switch name {
	case "cube":
		return &Cube{Light: DefaultLighting(), Texture: tex}, nil
	case "wirecube":
		return &Cube{Light: DefaultLighting(), Wire: true}, nil
	case "overlap":
		return &Overlap{}, nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q", name)
}
