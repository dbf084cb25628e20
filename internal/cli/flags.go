// Package cli collects the command-line options of both generator binaries.
package cli

import (
	"errors"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"mitsuba-camgen/internal/config"
)

// ErrHelp is returned after the usage text has been written for --help.
var ErrHelp = errors.New("cli: help requested")

// Parse reads the options for the given variant from args (without the program name).
// Unset numeric options stay zero and unset strings stay empty; nothing is range-checked.
// Usage and parse errors are written to out.
func Parse(name string, variant config.Variant, args []string, out io.Writer) (config.Flags, error) {
	f := config.Flags{Variant: variant}
	helped := false

	app := kingpin.New(name, "Generate Mitsuba 3 thin-lens camera array scene files.")
	app.UsageWriter(out)
	app.ErrorWriter(out)
	app.Terminate(func(int) { helped = true })
	app.HelpFlag.Short('h')

	app.Flag("rows", "Number of rows").Short('r').IntVar(&f.Rows)
	app.Flag("cols", "Number of columns").Short('c').IntVar(&f.Cols)
	app.Flag("offset", "Distance between cameras (use --offset=-x for negative values)").Short('o').Float64Var(&f.Offset)
	app.Flag("to_world", "To world transform, 16 space-separated values, row-major").StringVar(&f.ToWorld)
	app.Flag("name", "Name of the output file").Short('n').StringVar(&f.Name)
	app.Flag("radius", "Aperture radius").Short('a').Float64Var(&f.ApertureRadius)
	app.Flag("fov", "Field of view").Short('f').Float64Var(&f.FOV)
	app.Flag("distance", "Focus distance").Short('d').Float64Var(&f.FocusDistance)
	if variant == config.LookAt {
		app.Flag("viewcone", "View cone").Short('w').Float64Var(&f.ViewCone)
	}

	app.Flag("config", "Path to a JSON config file; flags override its values").StringVar(&f.ConfigFile)
	app.Flag("out", "Output directory (default: working directory)").StringVar(&f.OutputDir)
	app.Flag("preview", "Write a top-view layout image (.webp, .tga or .png)").StringVar(&f.Preview)
	app.Flag("preview-size", "Preview image size in pixels (default: 512)").IntVar(&f.PreviewSize)
	app.Flag("manifest", "Write manifest.json listing the generated cameras").BoolVar(&f.Manifest)

	if _, err := app.Parse(args); err != nil {
		return config.Flags{}, err
	}
	if helped {
		return config.Flags{}, ErrHelp
	}
	return f, nil
}
