package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/scene"
)

// FileName is the manifest written next to the generated scene files.
const FileName = "manifest.json"

// Manifest describes one generator run.
type Manifest struct {
	Variant string   `json:"variant"`
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Offset  float64  `json:"offset"`
	Files   []string `json:"files"`
	Cameras []Entry  `json:"cameras"`
}

// Entry represents one camera in the output manifest.
type Entry struct {
	File   string      `json:"file"`
	ID     int         `json:"id"`
	Row    int         `json:"row"`
	Col    int         `json:"col"`
	T      float64     `json:"t"`
	Origin [3]float64  `json:"origin"`
	Target *[3]float64 `json:"target,omitempty"`
}

// Build collects the cameras of rows and the written file names.
func Build(cfg config.Config, rows []scene.Row, files []string) Manifest {
	m := Manifest{
		Variant: cfg.Variant.String(),
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Offset:  cfg.Offset,
		Files:   files,
		Cameras: make([]Entry, 0, cfg.Cameras()),
	}
	for _, row := range rows {
		for _, cam := range row.Cameras {
			e := Entry{
				File:   row.File,
				ID:     cam.ID,
				Row:    cam.Row,
				Col:    cam.Col,
				T:      cam.T,
				Origin: cam.Origin,
			}
			if cfg.Variant == config.LookAt {
				target := [3]float64(cam.Target)
				e.Target = &target
			}
			m.Cameras = append(m.Cameras, e)
		}
	}
	return m
}

// Write writes the manifest as indented JSON.
func Write(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
