package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"mitsuba-camgen/internal/config"
)

func TestMainHelpWritesNothing(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Main("camgen-matrix", config.Matrix, []string{"--help", "--out", dir, "--to_world", identity}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "--distance") {
		t.Fatalf("usage not printed:\n%s", stdout.String())
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Fatalf("--help wrote %v", names)
	}
}

func TestMainShortTransform(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Main("camgen-lookat", config.LookAt, []string{"-r", "1", "-c", "2", "--to_world", "1 0 0", "--out", dir}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Invalid to_world transform") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Fatalf("wrote %v", names)
	}
}

func TestMainSuccess(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Main("camgen-matrix", config.Matrix, []string{
		"-r", "1", "-c", "3", "-o", "2", "-n", "cam", "--out", dir,
		"--to_world", "1 0 0 5 0 1 0 0 0 0 1 0 0 0 0 1",
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	if names := listDir(t, dir); strings.Join(names, " ") != "cam_1.xml camera_params.xml scene_batch.xml" {
		t.Fatalf("files = %v", names)
	}
	body := readText(t, filepath.Join(dir, "cam_1.xml"))
	for _, want := range []string{"1 0 0 7 ", "1 0 0 5 ", "1 0 0 3 "} {
		if !strings.Contains(body, `<matrix value="`+want) {
			t.Fatalf("missing matrix starting %q in:\n%s", want, body)
		}
	}
}

func TestMainBadConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("camgen-matrix", config.Matrix, []string{"--config", filepath.Join(t.TempDir(), "none.json")}, &stdout, &stderr)
	if code != 1 || !strings.Contains(stderr.String(), "Error loading config") {
		t.Fatalf("exit = %d, stderr = %q", code, stderr.String())
	}
}
