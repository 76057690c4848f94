package scene

import (
	"image"

	"github.com/compengalexxx/software-rasterizer/internal/geometry"
	"github.com/compengalexxx/software-rasterizer/internal/mathutil"
	"github.com/compengalexxx/software-rasterizer/internal/pipeline"
)

type cubeFace struct {
	quad   [4]mathutil.Vec3
	normal mathutil.Vec3
	color  [4]float64
}

var cubeFaces = [6]cubeFace{
	{ // front, z = +1
		quad:   [4]mathutil.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		normal: mathutil.Vec3{0, 0, 1},
		color:  [4]float64{0.86, 0.24, 0.22, 1},
	},
	{ // back, z = -1
		quad:   [4]mathutil.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
		normal: mathutil.Vec3{0, 0, -1},
		color:  [4]float64{0.22, 0.62, 0.86, 1},
	},
	{ // left, x = -1
		quad:   [4]mathutil.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
		normal: mathutil.Vec3{-1, 0, 0},
		color:  [4]float64{0.26, 0.78, 0.38, 1},
	},
	{ // right, x = +1
		quad:   [4]mathutil.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
		normal: mathutil.Vec3{1, 0, 0},
		color:  [4]float64{0.92, 0.74, 0.18, 1},
	},
	{ // top, y = +1
		quad:   [4]mathutil.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
		normal: mathutil.Vec3{0, 1, 0},
		color:  [4]float64{0.78, 0.34, 0.80, 1},
	},
	{ // bottom, y = -1
		quad:   [4]mathutil.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
		normal: mathutil.Vec3{0, -1, 0},
		color:  [4]float64{0.90, 0.88, 0.84, 1},
	},
}

var quadUV = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube is a spinning unit cube, flat-shaded per face. With a texture it
// samples the same image on every face, modulated by the face shade.
type Cube struct {
	Light   Lighting
	Texture *image.NRGBA
	Wire    bool
}

func (c *Cube) Frame(t, aspect float64) []pipeline.DrawCommand {
	tf := geometry.Transform{
		Model:      mathutil.Mat4Mul(mathutil.RotY(t*0.9), mathutil.RotX(t*0.6)),
		View:       mathutil.LookAt(mathutil.Vec3{0, 1.2, 3.5}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}),
		Projection: mathutil.Perspective(60, aspect, 0.1, 100),
	}

	st := pipeline.State{Mode: pipeline.Fill, DepthTest: true, Texture: c.Texture}
	if c.Wire {
		st = pipeline.State{Mode: pipeline.Wireframe, DepthTest: true}
	}

	cmds := make([]pipeline.DrawCommand, 0, 12)
	for _, face := range cubeFaces {
		shade := c.Light.Shade(tf.Model.MulDir(face.normal).Normalize())

		col := [4]float64{
			face.color[0] * shade,
			face.color[1] * shade,
			face.color[2] * shade,
			face.color[3],
		}
		if c.Texture != nil {
			// White base; the texel carries the hue.
			col = [4]float64{shade, shade, shade, 1}
		}

		corner := func(i int) geometry.Vertex {
			return geometry.Vertex{
				Position: face.quad[i],
				Color:    col,
				U:        quadUV[i][0],
				V:        quadUV[i][1],
			}
		}

		t0 := geometry.Triangle{corner(0), corner(1), corner(2)}
		t1 := geometry.Triangle{corner(0), corner(2), corner(3)}
		cmds = append(cmds,
			pipeline.DrawCommand{Triangle: &t0, Transform: tf, State: st},
			pipeline.DrawCommand{Triangle: &t1, Transform: tf, State: st},
		)
	}
	return cmds
}
