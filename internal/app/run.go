// Package app runs the camera array generator pipeline.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/manifest"
	"mitsuba-camgen/internal/preview"
	"mitsuba-camgen/internal/scene"
	"mitsuba-camgen/internal/transform"
)

// TransformError wraps a rejected --to_world value.
type TransformError struct {
	Err error
}

func (e *TransformError) Error() string {
	return "Invalid to_world transform: " + e.Err.Error()
}

func (e *TransformError) Unwrap() error { return e.Err }

// Result lists what a run wrote.
type Result struct {
	Files   []string
	Rows    []scene.Row
	Preview string
}

// Run parses the transform, writes the shared fragments and the row files,
// then the optional preview and manifest. Progress goes to stdout.
// Nothing is written when the transform is invalid.
func Run(cfg config.Config, stdout io.Writer) (Result, error) {
	m, err := transform.Parse(cfg.ToWorld)
	if err != nil {
		return Result{}, &TransformError{Err: err}
	}
	basis := transform.NewBasis(m)

	rows, err := scene.Plan(cfg, basis)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("app: create %s: %w", cfg.OutputDir, err)
	}

	var res Result
	res.Rows = rows

	if cfg.Variant == config.Matrix {
		path, err := scene.WriteBatch(cfg.OutputDir, cfg)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}
	path, err := scene.WriteCameraParams(cfg.OutputDir, cfg)
	if err != nil {
		return res, err
	}
	res.Files = append(res.Files, path)

	var diag io.Writer
	if cfg.Variant == config.LookAt {
		diag = stdout
	}
	written, err := scene.Emit(cfg.OutputDir, cfg.Variant, rows, basis, diag)
	res.Files = append(res.Files, written...)
	if err != nil {
		return res, err
	}
	fmt.Fprintf(stdout, "Cameras: %d in %d file(s), variant %s\n", cfg.Cameras(), len(written), cfg.Variant)

	if cfg.Preview != "" {
		previewPath := cfg.Preview
		if !filepath.IsAbs(previewPath) {
			previewPath = filepath.Join(cfg.OutputDir, previewPath)
		}
		img := preview.Render(rows, basis, preview.Options{
			Variant:     cfg.Variant,
			Size:        cfg.PreviewSize,
			Supersample: cfg.Supersample,
		})
		if err := preview.Save(previewPath, img); err != nil {
			return res, err
		}
		res.Preview = previewPath
		fmt.Fprintf(stdout, "Preview: %s\n", previewPath)
	}

	if cfg.Manifest {
		names := make([]string, len(res.Files))
		for i, f := range res.Files {
			names[i] = filepath.Base(f)
		}
		manifestPath := filepath.Join(cfg.OutputDir, manifest.FileName)
		if err := manifest.Write(manifestPath, manifest.Build(cfg, rows, names)); err != nil {
			return res, err
		}
		fmt.Fprintf(stdout, "Manifest: %s\n", manifestPath)
	}

	return res, nil
}
