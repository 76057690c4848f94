// Package display is the windowing collaborator of the pipeline: it
// owns the SDL window, the accelerated renderer and a streaming texture
// the finished framebuffer is presented through, and it reports the
// quit/resize events the frame loop reacts to. It never reaches into
// pipeline internals.
package display

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/compengalexxx/software-rasterizer/internal/raster"
)

// Init brings up the SDL video subsystem. Pair with Quit.
func Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

// Quit tears down SDL. Safe after a failed Init.
func Quit() {
	sdl.Quit()
}

// Surface is one presentable window.
type Surface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
}

// NewSurface opens a resizable window with an accelerated renderer and
// a streaming texture matching the initial size. On any failure the
// partially acquired resources are released before returning.
func NewSurface(title string, width, height int) (*Surface, error) {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	s := &Surface{window: window, renderer: renderer}
	if err := s.createTexture(width, height); err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}
	return s, nil
}

func (s *Surface) createTexture(w, h int) error {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	texture, err := s.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(w),
		int32(h),
	)
	if err != nil {
		return err
	}
	s.texture = texture
	s.width = w
	s.height = h
	return nil
}

// Destroy releases the texture, renderer and window.
func (s *Surface) Destroy() {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
}

// HandleEvents drains the SDL event queue. It reports whether the frame
// loop should stop (window close or Escape) and, after a window resize,
// the new pixel dimensions.
func (s *Surface) HandleEvents() (quit bool, resized bool, w, h int) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED && ev.Data1 > 0 && ev.Data2 > 0 {
				resized = true
				w = int(ev.Data1)
				h = int(ev.Data2)
			}
		}
	}
	return quit, resized, w, h
}

// Present uploads one finished frame and shows it. The view's pixels
// are RGBA; the streaming texture is ARGB8888, which is BGRA byte order
// on little-endian, so the channels are swizzled during the copy. A
// view size differing from the texture (after a resize) recreates the
// texture first.
func (s *Surface) Present(view *raster.BlitView) error {
	if view.Width != s.width || view.Height != s.height {
		if err := s.createTexture(view.Width, view.Height); err != nil {
			return err
		}
	}

	pixels, _, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	src := view.Pix
	n := len(src)
	if len(pixels) < n {
		n = len(pixels)
	}
	for i := 0; i+3 < n; i += 4 {
		pixels[i] = src[i+2]   // b
		pixels[i+1] = src[i+1] // g
		pixels[i+2] = src[i]   // r
		pixels[i+3] = src[i+3] // a
	}
	s.texture.Unlock()

	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}
