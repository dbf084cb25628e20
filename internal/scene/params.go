package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mitsuba-camgen/internal/config"
)

// Fixed file names referenced by <include> elements in the row files.
const (
	CameraParamsFile = "camera_params.xml"
	BatchFile        = "scene_batch.xml"
	CameraFilmFile   = "camera_film.xml" // provided by the caller's scene, not generated
)

// WriteCameraParams writes camera_params.xml into dir and returns its path.
func WriteCameraParams(dir string, cfg config.Config) (string, error) {
	var buf bytes.Buffer
	writeCameraParams(&buf, cfg)
	return writeFile(dir, CameraParamsFile, buf.Bytes())
}

func writeCameraParams(w io.Writer, cfg config.Config) {
	io.WriteString(w, sceneBegin())
	if cfg.Variant == config.LookAt {
		fmt.Fprintf(w, "<string name=\"fov_axis\" value=\"smaller\" />\n")
		fmt.Fprintf(w, "<float name=\"focus_distance\" value=\"%s\" />\n", formatFloat(cfg.FocusDistance))
		fmt.Fprintf(w, "<float name=\"aperture_radius\" value=\"%s\" />\n", formatFloat(cfg.ApertureRadius))
		fmt.Fprintf(w, "<float name=\"fov\" value=\"%s\" />\n", formatFloat(cfg.FOV))
		fmt.Fprintf(w, "<float name=\"view_cone\" value=\"%s\" />\n", formatFloat(cfg.ViewCone))
	} else {
		fmt.Fprintf(w, "<float name=\"aperture_radius\" value=\"%s\" />\n", formatFloat(cfg.ApertureRadius))
		fmt.Fprintf(w, "<float name=\"fov\" value=\"%s\" />\n", formatFloat(cfg.FOV))
	}
	io.WriteString(w, sceneEnd)
}

// writeFile creates or truncates dir/name with data.
func writeFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("scene: write %s: %w", path, err)
	}
	return path, nil
}
