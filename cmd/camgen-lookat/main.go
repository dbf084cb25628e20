// Command camgen-lookat writes a Mitsuba 3 camera array where every thin-lens
// sensor is oriented with a lookat transform, plus camera_params.xml.
package main

import (
	"os"

	"mitsuba-camgen/internal/app"
	"mitsuba-camgen/internal/config"
)

func main() {
	os.Exit(app.Main("camgen-lookat", config.LookAt, os.Args[1:], os.Stdout, os.Stderr))
}
