// rasterdump renders a scene's animation frames to WebP files without a
// window, using one pipeline driver per worker so frames can be
// rendered in parallel with output identical to a sequential run.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/compengalexxx/software-rasterizer/internal/config"
	"github.com/compengalexxx/software-rasterizer/internal/pipeline"
	"github.com/compengalexxx/software-rasterizer/internal/postprocess"
	"github.com/compengalexxx/software-rasterizer/internal/raster"
	"github.com/compengalexxx/software-rasterizer/internal/scene"
	"github.com/compengalexxx/software-rasterizer/internal/texture"
)

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	File    string
	Success bool
	Error   string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	fps := flag.Int("fps", 0, "Animation rate, determines the per-frame timestep (default: 60)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	sceneName := flag.String("scene", "", "Scene to render: cube, wirecube, overlap (default: cube)")
	texPath := flag.String("texture", "", "Texture file (PNG, JPEG or TGA) for textured scenes")
	background := flag.String("background", "", "Background color, hex RRGGBB (default: 14141e)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		FPS:         *fps,
		Frames:      *frames,
		Supersample: *supersample,
		Workers:     *workers,
		Scene:       *sceneName,
		Texture:     *texPath,
		Background:  *background,
		Output:      *outputDir,
	})

	bg, err := config.ParseHexColor(cfg.Background)
	if err != nil {
		return err
	}

	// The cache keeps workers from decoding the same file repeatedly.
	texCache := texture.NewCache()
	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		if tex = texCache.Resolve(cfg.TexturePath); tex == nil {
			return fmt.Errorf("rasterdump: cannot load texture %s", cfg.TexturePath)
		}
	}

	scn, err := scene.ByName(cfg.Scene, tex)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	fmt.Printf("Scene: %s, %dx%d, %d frames @ %d FPS, supersample %dx\n",
		cfg.Scene, cfg.Width, cfg.Height, cfg.Frames, cfg.TargetFPS, cfg.Supersample)
	fmt.Printf("Output: %s, Workers: %d\n", cfg.OutputDir, cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := renderAll(cfg, scn, raster.RGBA(bg))
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := writeManifest(manifestPath, cfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// renderAll runs the frame worker pool. Each frame gets its own driver
// and framebuffer, so workers never share mutable state and the output
// matches a sequential run exactly.
func renderAll(cfg config.Config, scn scene.Scene, bg raster.RGBA) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, scn, bg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg config.Config, scn scene.Scene, bg raster.RGBA, frame int) Result {
	fail := func(err error) Result {
		return Result{Frame: frame, Error: err.Error()}
	}

	drv, err := pipeline.NewDriver(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
	if err != nil {
		return fail(err)
	}

	t := float64(frame) / float64(cfg.TargetFPS)
	aspect := float64(cfg.Width) / float64(cfg.Height)

	drv.BeginFrame(bg)
	for _, cmd := range scn.Frame(t, aspect) {
		drv.Submit(cmd)
	}
	drv.EndFrame()

	img := drv.Snapshot()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	name := fmt.Sprintf("frame_%04d.webp", frame)
	outPath := filepath.Join(cfg.OutputDir, name)
	f, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fail(fmt.Errorf("WebP encode: %w", err))
	}

	return Result{Frame: frame, File: name, Success: true}
}
