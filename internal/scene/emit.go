package scene

import (
	"bytes"
	"fmt"
	"io"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/transform"
)

// Emit writes one scene file per row into dir and returns the written paths.
// In the lookat variant each target is also printed to diag.
func Emit(dir string, variant config.Variant, rows []Row, b transform.Basis, diag io.Writer) ([]string, error) {
	paths := make([]string, 0, len(rows))
	var buf bytes.Buffer
	for _, row := range rows {
		buf.Reset()
		io.WriteString(&buf, sceneBegin())
		for _, cam := range row.Cameras {
			writeSensor(&buf, variant, cam, b)
			if variant == config.LookAt && diag != nil {
				fmt.Fprintf(diag, "target %d: %s\n", cam.ID, formatVec3(cam.Target))
			}
		}
		io.WriteString(&buf, sceneEnd)

		path, err := writeFile(dir, row.File, buf.Bytes())
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSensor(w io.Writer, variant config.Variant, cam Camera, b transform.Basis) {
	io.WriteString(w, "<sensor type=\"thinlens\">\n")
	fmt.Fprintf(w, "\t<float name=\"t\" value=\"%s\" />\n", formatT(cam.T))
	fmt.Fprintf(w, "\t<include filename=\"%s\" />\n", CameraParamsFile)
	io.WriteString(w, "\t<transform name=\"to_world\">\n")

	if variant == config.LookAt {
		fmt.Fprintf(w, "\t\t<lookat target=\"%s\" origin=\"%s\" up=\"%s\"/>\n",
			formatVec3(cam.Target), formatVec3(cam.Origin), formatVec3(b.Up))
	} else {
		m := b.Translated(cam.Origin)
		io.WriteString(w, "\t\t<matrix value=\"")
		for k, v := range m {
			if k > 0 {
				io.WriteString(w, " ")
			}
			io.WriteString(w, formatFloat(v))
		}
		io.WriteString(w, "\"/>\n")
	}

	io.WriteString(w, "\t</transform>\n")
	fmt.Fprintf(w, "\t<include filename=\"%s\" />\n", CameraFilmFile)
	io.WriteString(w, "</sensor>\n\n")
}
