package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/scene"
	"mitsuba-camgen/internal/transform"
)

func plan(t *testing.T, cfg config.Config) []scene.Row {
	t.Helper()
	m, err := transform.Parse("1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows, err := scene.Plan(cfg, transform.NewBasis(m))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return rows
}

func TestWriteManifest(t *testing.T) {
	cfg := config.Config{Variant: config.LookAt, Rows: 2, Cols: 2, Offset: 1, Name: "cam"}
	rows := plan(t, cfg)
	m := Build(cfg, rows, []string{"cam_1.xml", "cam_2.xml"})

	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, m); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Variant != "lookat" || len(got.Files) != 2 || len(got.Cameras) != 4 {
		t.Fatalf("unexpected manifest: %+v", got)
	}
	last := got.Cameras[3]
	if last.File != "cam_2.xml" || last.ID != 3 || last.Row != 1 || last.Col != 1 || last.T != 0 {
		t.Fatalf("last camera = %+v", last)
	}
	if last.Target == nil {
		t.Fatal("lookat manifest should carry targets")
	}
}

func TestBuildMatrixOmitsTarget(t *testing.T) {
	cfg := config.Config{Rows: 1, Cols: 3, Offset: 2, Name: "cam"}
	m := Build(cfg, plan(t, cfg), nil)
	for _, e := range m.Cameras {
		if e.Target != nil {
			t.Fatalf("matrix variant camera %d has a target", e.ID)
		}
	}
	if m.Cameras[0].Origin != [3]float64{2, 0, 0} {
		t.Fatalf("first origin = %v", m.Cameras[0].Origin)
	}
}
