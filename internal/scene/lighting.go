package scene

import (
	"math"

	"github.com/compengalexxx/software-rasterizer/internal/mathutil"
)

// Lighting holds the directional light model applied per face.
// Shading happens here, at draw-list build time — the pipeline itself
// only interpolates whatever colors the vertices carry.
type Lighting struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	Ambient  float64
	Direct   float64
	Rim      float64
}

func DefaultLighting() Lighting {
	return Lighting{
		LightDir: mathutil.Vec3{0.4, 0.7, 0.6}.Normalize(),
		RimDir:   mathutil.Vec3{-0.5, 0.2, -0.8}.Normalize(),
		Ambient:  0.35,
		Direct:   0.55,
		Rim:      0.15,
	}
}

// Shade returns the combined lighting scalar for a world-space face
// normal. Lambertian terms use abs for double-sided faces.
func (l Lighting) Shade(normal mathutil.Vec3) float64 {
	ndl := math.Abs(normal.Dot(l.LightDir))
	ndr := math.Abs(normal.Dot(l.RimDir))
	return l.Ambient + ndl*l.Direct + ndr*l.Rim
}
