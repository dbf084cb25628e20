package app

import (
	"errors"
	"fmt"
	"io"

	"mitsuba-camgen/internal/cli"
	"mitsuba-camgen/internal/config"
)

// Main runs one generator binary and returns its exit status:
// 1 for --help, bad flags, a bad config file, a bad transform or a failed write.
func Main(name string, variant config.Variant, args []string, stdout, stderr io.Writer) int {
	flags, err := cli.Parse(name, variant, args, stdout)
	if errors.Is(err, cli.ErrHelp) {
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.FromFlags(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	if _, err := Run(cfg, stdout); err != nil {
		var te *TransformError
		if errors.As(err, &te) {
			fmt.Fprintln(stderr, err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
