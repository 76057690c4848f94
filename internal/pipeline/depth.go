package pipeline

import "github.com/compengalexxx/software-rasterizer/internal/raster"

// writeFragment applies the visibility test and, on pass, resolves the
// final color and writes it. With the depth test enabled a fragment
// passes when it is strictly nearer than the stored depth (smaller
// wins); on pass both color and depth are written. With the test
// disabled the color is overwritten unconditionally (last fragment
// wins, submission order) and the depth plane is left untouched.
func (d *Driver) writeFragment(f raster.Fragment, st *State) {
	fb := d.fb
	idx := f.Y*fb.Width + f.X

	if st.DepthTest {
		if f.Depth >= fb.Depth[idx] {
			return
		}
		fb.Depth[idx] = f.Depth
	}

	r, g, b, a := f.Color[0], f.Color[1], f.Color[2], f.Color[3]
	if st.Texture != nil {
		tr, tg, tb, ta := raster.SampleTexture(st.Texture, f.U, f.V)
		r *= float64(tr) / 255
		g *= float64(tg) / 255
		b *= float64(tb) / 255
		a *= float64(ta) / 255
	}

	ci := idx * 4
	fb.Color[ci] = clamp255(r * 255)
	fb.Color[ci+1] = clamp255(g * 255)
	fb.Color[ci+2] = clamp255(b * 255)
	fb.Color[ci+3] = clamp255(a * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
