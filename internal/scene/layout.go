package scene

import (
	"fmt"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/mathutil"
	"mitsuba-camgen/internal/transform"
)

// Camera is one sensor of the array.
type Camera struct {
	ID   int // global index in emission order, row*cols+col
	Row  int // 0-based
	Col  int // 0-based
	Step int // signed multiple of the spacing applied along the right axis
	T    float64

	Origin mathutil.Vec3
	Target mathutil.Vec3 // lookat variant only
}

// Row is one output file holding cols cameras.
type Row struct {
	ID      int // 1-based file id
	File    string
	Cameras []Camera
}

// Plan lays out rows*cols cameras centred on the basis origin.
// Row r starts at step -cameras/2 + r*cols and each column adds one step.
// Cameras move by -step*offset*right from the basis origin.
func Plan(cfg config.Config, b transform.Basis) ([]Row, error) {
	if cfg.Rows < 0 || cfg.Cols < 0 {
		return nil, fmt.Errorf("scene: invalid array size %dx%d", cfg.Rows, cfg.Cols)
	}
	cameras := cfg.Cameras()
	if cameras == 0 {
		return nil, nil
	}
	mid := cameras / 2

	rows := make([]Row, cfg.Rows)
	for r := range rows {
		start := -mid + r*cfg.Cols
		row := Row{
			ID:      r + 1,
			File:    RowFileName(cfg.Name, r+1),
			Cameras: make([]Camera, cfg.Cols),
		}
		for j := range row.Cameras {
			step := start + j
			shift := b.Right.Scale(float64(step) * cfg.Offset)
			id := r*cfg.Cols + j
			row.Cameras[j] = Camera{
				ID:     id,
				Row:    r,
				Col:    j,
				Step:   step,
				T:      paramT(id, cameras),
				Origin: b.Origin.Sub(shift),
				// Relative to the world origin, not to the camera origin.
				Target: b.Forward.Sub(shift),
			}
		}
		rows[r] = row
	}
	return rows, nil
}

// RowFileName returns "<name>_<id>.xml".
func RowFileName(name string, id int) string {
	return fmt.Sprintf("%s_%d.xml", name, id)
}

// paramT maps camera k to 1 - k/(cameras-1); a single camera gets t=1.
func paramT(k, cameras int) float64 {
	if cameras <= 1 {
		return 1
	}
	return 1 - float64(k)/float64(cameras-1)
}
