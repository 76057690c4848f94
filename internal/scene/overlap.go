package scene

import (
	"math"

	"github.com/compengalexxx/software-rasterizer/internal/geometry"
	"github.com/compengalexxx/software-rasterizer/internal/pipeline"
)

// Overlap shows the visibility rules: two depth-tested triangles
// resolving by distance regardless of submission order, a third drawn
// with the test disabled that always paints over them, and a wireframe
// overlay relying on strict submission order.
type Overlap struct{}

func (o *Overlap) Frame(t, aspect float64) []pipeline.DrawCommand {
	tf := geometry.IdentityTransform()
	sway := 0.25 * math.Sin(t)

	flat := func(x0, y0, x1, y1, x2, y2, z float64, col [4]float64) geometry.Triangle {
		var tri geometry.Triangle
		pos := [3][2]float64{{x0, y0}, {x1, y1}, {x2, y2}}
		for i := range tri {
			tri[i] = geometry.Vertex{Color: col}
			tri[i].Position[0] = pos[i][0] / aspect
			tri[i].Position[1] = pos[i][1]
			tri[i].Position[2] = z
		}
		return tri
	}

	// Nearer (z -0.5) and farther (z 0.5) triangles; far one submitted
	// last but the depth test keeps the near one in front.
	near := flat(-0.7+sway, -0.6, 0.5+sway, -0.6, -0.1+sway, 0.7, -0.5,
		[4]float64{0.86, 0.24, 0.22, 1})
	far := flat(-0.5, -0.4, 0.7, -0.4, 0.1, 0.9, 0.5,
		[4]float64{0.22, 0.62, 0.86, 1})

	// Unconditional overwrite: last submitted wins.
	overlay := flat(-0.9, -0.9, -0.3, -0.9, -0.6, -0.4, 0,
		[4]float64{0.26, 0.78, 0.38, 0.9})

	depthOn := pipeline.State{Mode: pipeline.Fill, DepthTest: true}
	depthOff := pipeline.State{Mode: pipeline.Fill, DepthTest: false}
	wire := pipeline.State{Mode: pipeline.Wireframe, DepthTest: false}

	outline := near
	for i := range outline {
		outline[i].Color = [4]float64{0.05, 0.05, 0.08, 1}
	}

	return []pipeline.DrawCommand{
		{Triangle: &near, Transform: tf, State: depthOn},
		{Triangle: &far, Transform: tf, State: depthOn},
		{Triangle: &overlay, Transform: tf, State: depthOff},
		{Triangle: &outline, Transform: tf, State: wire},
	}
}
