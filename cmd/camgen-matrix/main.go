// Command camgen-matrix writes a Mitsuba 3 camera array where every thin-lens
// sensor carries an explicit to_world matrix, plus the shared camera_params.xml
// and scene_batch.xml fragments.
package main

import (
	"os"

	"mitsuba-camgen/internal/app"
	"mitsuba-camgen/internal/config"
)

func main() {
	os.Exit(app.Main("camgen-matrix", config.Matrix, os.Args[1:], os.Stdout, os.Stderr))
}
