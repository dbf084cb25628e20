package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/manifest"
	"mitsuba-camgen/internal/transform"
)

const identity = "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1"

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRunMatrix(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Rows: 2, Cols: 4, Offset: 0.1, ToWorld: identity, Name: "small", FOV: 40, ApertureRadius: 0.02, FocusDistance: 3}
	cfg.Resolve(config.Flags{OutputDir: dir})

	var out bytes.Buffer
	res, err := Run(cfg, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"camera_params.xml", "scene_batch.xml", "small_1.xml", "small_2.xml"}
	if got := listDir(t, dir); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("files = %v, want %v", got, want)
	}
	if len(res.Files) != 4 || len(res.Rows) != 2 {
		t.Fatalf("result = %+v", res)
	}
	if strings.Contains(out.String(), "target") {
		t.Fatal("matrix variant should not print targets")
	}
	if !strings.Contains(out.String(), "Cameras: 8 in 2 file(s), variant matrix") {
		t.Fatalf("summary missing: %q", out.String())
	}
}

func TestRunLookAtWithExtras(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{ToWorld: identity}
	cfg.Resolve(config.Flags{
		Variant: config.LookAt, Rows: 1, Cols: 3, Offset: 2, Name: "cam", ViewCone: 1,
		OutputDir: dir, Preview: "layout.png", PreviewSize: 64, Manifest: true,
	})

	var out bytes.Buffer
	res, err := Run(cfg, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"cam_1.xml", "camera_params.xml", "layout.png", "manifest.json"}
	if got := listDir(t, dir); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("files = %v, want %v", got, want)
	}
	if res.Preview != filepath.Join(dir, "layout.png") {
		t.Fatalf("preview = %q", res.Preview)
	}
	if n := strings.Count(out.String(), "target "); n != 3 {
		t.Fatalf("printed %d targets, want 3:\n%s", n, out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
		t.Fatalf("manifest: %v", err)
	}
}

func TestRunRejectsTransformWithoutWriting(t *testing.T) {
	for _, toWorld := range []string{"1 0 0 0 0 1 0 0 0 0 1 0", "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 one"} {
		dir := t.TempDir()
		cfg := config.Config{Rows: 1, Cols: 2, ToWorld: toWorld, Name: "cam"}
		cfg.Resolve(config.Flags{OutputDir: dir})

		var out bytes.Buffer
		_, err := Run(cfg, &out)
		var te *TransformError
		if !errors.As(err, &te) {
			t.Fatalf("%q: err = %v, want *TransformError", toWorld, err)
		}
		if !strings.HasPrefix(err.Error(), "Invalid to_world transform") {
			t.Fatalf("message = %q", err.Error())
		}
		if names := listDir(t, dir); len(names) != 0 {
			t.Fatalf("%q: wrote %v", toWorld, names)
		}
	}

	_, err := Run(config.Config{OutputDir: t.TempDir()}, &bytes.Buffer{})
	if !errors.Is(err, transform.ErrTokenCount) {
		t.Fatalf("empty transform err = %v", err)
	}
}

func TestRunOverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "camera_params.xml")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{Rows: 1, Cols: 2, ToWorld: identity, Name: "cam", FOV: 30}
	cfg.Resolve(config.Flags{OutputDir: dir})
	if _, err := Run(cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<float name="fov" value="30" />`) {
		t.Fatalf("camera_params.xml not overwritten: %s", data)
	}
}

func readText(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
