package scene

import (
	"bytes"
	"fmt"
	"io"

	"mitsuba-camgen/internal/config"
)

// The $-prefixed tokens are substituted by a later templating pass.
const batchSampler = `
    <sampler type="independent">
        <integer name="sample_count" value="$spp"/>
    </sampler>
    `

const batchFilm = `
    <film type="hdrfilm" id="film">
        <integer name="width" value="$width"/>
        <integer name="height" value="$height"/>
        <string name="file_format" value="openexr" />
` + "\t\t" + `<string name="pixel_format" value="rgb" />
        <rfilter type="rdepth">
            <float name="stddev" value="$rd" />
        </rfilter>
    </film>`

// WriteBatch writes scene_batch.xml, the batch sensor wrapping one row file.
// Only the matrix variant uses it.
func WriteBatch(dir string, cfg config.Config) (string, error) {
	var buf bytes.Buffer
	writeBatch(&buf, cfg)
	return writeFile(dir, BatchFile, buf.Bytes())
}

func writeBatch(w io.Writer, cfg config.Config) {
	fmt.Fprintf(w, "<sensor type=\"batch\">\n")
	fmt.Fprintf(w, "\t<integer name=\"rows\" value=\"1\" />\n")
	fmt.Fprintf(w, "\t<integer name=\"cols\" value=\"%d\" />\n", cfg.Cols)
	fmt.Fprintf(w, "\t<integer name=\"total_views\" value=\"%d\" />\n", cfg.Cameras())
	fmt.Fprintf(w, "\t<float name=\"offset\" value=\"%s\" />\n", formatFloat(cfg.Offset))
	fmt.Fprintf(w, "\t<float name=\"focus_distance\" value=\"%s\" />\n", formatFloat(cfg.FocusDistance))
	fmt.Fprintf(w, "\t<include filename=\"small_$row.xml\" />\n")
	io.WriteString(w, batchSampler)
	io.WriteString(w, batchFilm)
	io.WriteString(w, "\n</sensor>\n")
}
