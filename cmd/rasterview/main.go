package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/compengalexxx/software-rasterizer/internal/config"
	"github.com/compengalexxx/software-rasterizer/internal/display"
	"github.com/compengalexxx/software-rasterizer/internal/pipeline"
	"github.com/compengalexxx/software-rasterizer/internal/raster"
	"github.com/compengalexxx/software-rasterizer/internal/scene"
	"github.com/compengalexxx/software-rasterizer/internal/texture"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width in pixels (default: 800)")
	height := flag.Int("height", 0, "Window height in pixels (default: 600)")
	fps := flag.Int("fps", 0, "Target frames per second (default: 60)")
	sceneName := flag.String("scene", "", "Scene to render: cube, wirecube, overlap (default: cube)")
	texPath := flag.String("texture", "", "Texture file (PNG, JPEG or TGA) for textured scenes")
	background := flag.String("background", "", "Background color, hex RRGGBB (default: 14141e)")

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
		Width:      *width,
		Height:     *height,
		FPS:        *fps,
		Scene:      *sceneName,
		Texture:    *texPath,
		Background: *background,
	})

	bg, err := config.ParseHexColor(cfg.Background)
	if err != nil {
		return err
	}

	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			return err
		}
	}

	scn, err := scene.ByName(cfg.Scene, tex)
	if err != nil {
		return err
	}

	if err := display.Init(); err != nil {
		return err
	}
	defer display.Quit()

	surf, err := display.NewSurface("Software Rasterizer", cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer surf.Destroy()

	drv, err := pipeline.NewDriver(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	fmt.Printf("Scene: %s, %dx%d @ %d FPS\n", cfg.Scene, cfg.Width, cfg.Height, cfg.TargetFPS)

	sync := display.NewTimeSynchronizer(cfg.TargetFPS)
	start := time.Now()

	for {
		quit, resized, w, h := surf.HandleEvents()
		if quit {
			break
		}
		if resized {
			if err := drv.Resize(w, h); err != nil {
				return err
			}
		}

		fw, fh := drv.Size()
		t := time.Since(start).Seconds()

		drv.BeginFrame(raster.RGBA(bg))
		for _, cmd := range scn.Frame(t, float64(fw)/float64(fh)) {
			drv.Submit(cmd)
		}
		if err := surf.Present(drv.EndFrame()); err != nil {
			return err
		}

		sync.MaySleep()
	}

	return nil
}
