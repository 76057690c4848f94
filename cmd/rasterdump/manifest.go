package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/compengalexxx/software-rasterizer/internal/config"
)

// Manifest describes a dumped frame sequence for downstream consumers.
type Manifest struct {
	Scene  string   `json:"scene"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	FPS    int      `json:"fps"`
	Frames []string `json:"frames"`
}

func writeManifest(path string, cfg config.Config, results []Result) error {
	m := Manifest{
		Scene:  cfg.Scene,
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.TargetFPS,
		Frames: make([]string, 0, len(results)),
	}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, r.File)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
