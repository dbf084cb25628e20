// Package scene writes the Mitsuba 3 XML fragments of a camera array.
package scene

import (
	"fmt"
	"strconv"

	"mitsuba-camgen/internal/mathutil"
)

// Version is the scene format version written in every <scene> wrapper.
const Version = "3.0.0"

func sceneBegin() string { return `<scene version="` + Version + `">` + "\n" }

const sceneEnd = "</scene>\n"

// formatFloat renders v with six significant digits, trailing zeros dropped.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatT renders the interpolation parameter with six decimals.
func formatT(t float64) string {
	return strconv.FormatFloat(t, 'f', 6, 64)
}

// formatVec3 renders v as "x, y, z" for lookat attributes.
func formatVec3(v mathutil.Vec3) string {
	return fmt.Sprintf("%s, %s, %s", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
}
