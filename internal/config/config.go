package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds all configurable render and output settings.
type Config struct {
	// Target
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"` // hex RRGGBB or RRGGBBAA

	// Scene
	Scene       string `json:"scene"`
	TexturePath string `json:"texture"`
	TargetFPS   int    `json:"target_fps"`

	// Offline dump
	Frames      int    `json:"frames"`
	OutputDir   string `json:"output_dir"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	FPS         int
	Frames      int
	Supersample int
	Workers     int
	Scene       string
	Texture     string
	Background  string
	Output      string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FPS > 0 {
		c.TargetFPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Output != "" {
		c.OutputDir = flags.Output
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.Scene == "" {
		c.Scene = "cube"
	}
	if c.Background == "" {
		c.Background = "14141e" // the dark blue-gray the window always cleared to
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// ParseHexColor parses "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Alpha defaults to 255.
func ParseHexColor(s string) ([4]uint8, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return [4]uint8{}, fmt.Errorf("config: bad color %q: want RRGGBB or RRGGBBAA", s)
	}

	var c [4]uint8
	c[3] = 255
	for i := 0; i*2 < len(h); i++ {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return [4]uint8{}, fmt.Errorf("config: bad color %q: %w", s, err)
		}
		c[i] = uint8(v)
	}
	return c, nil
}
