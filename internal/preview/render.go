// Package preview draws a top view of a camera array.
package preview

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"mitsuba-camgen/internal/config"
	"mitsuba-camgen/internal/mathutil"
	"mitsuba-camgen/internal/scene"
	"mitsuba-camgen/internal/transform"
)

var (
	background = color.NRGBA{24, 24, 28, 255}
	axisColor  = color.NRGBA{70, 70, 80, 255}
	rayColor   = color.NRGBA{150, 150, 160, 255}
	labelColor = color.NRGBA{230, 230, 230, 255}
)

// Options controls the preview canvas.
type Options struct {
	Variant     config.Variant
	Size        int // output width and height
	Supersample int
}

// point is a position on the preview plane: u along right, v along forward.
type point struct{ u, v float64 }

// Render draws every camera origin, coloured by t, seen from above the
// right/forward plane of the basis. The lookat variant adds each target and
// the ray towards it.
func Render(rows []scene.Row, b transform.Basis, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts.Size = 512
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	size := opts.Size * ss

	uAxis := b.Right.Normalize()
	vAxis := b.Forward.Normalize()
	if vAxis == (mathutil.Vec3{}) {
		vAxis = b.Up
	}
	project := func(p mathutil.Vec3) point {
		d := p.Sub(b.Origin)
		return point{d.Dot(uAxis), d.Dot(vAxis)}
	}

	var origins, targets []point
	var ts []float64
	for _, row := range rows {
		for _, cam := range row.Cameras {
			origins = append(origins, project(cam.Origin))
			ts = append(ts, cam.T)
			if opts.Variant == config.LookAt {
				targets = append(targets, project(cam.Target))
			}
		}
	}

	fit := newViewport(append(append([]point{{0, 0}}, origins...), targets...), size)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(size, size)
	width := float32(ss)

	ox, oy := fit.toPixel(point{0, 0})
	fillPath(z, img, axisColor, line(0, oy, float32(size), oy, width))
	fillPath(z, img, axisColor, line(ox, 0, ox, float32(size), width))

	for i, p := range targets {
		x0, y0 := fit.toPixel(origins[i])
		x1, y1 := fit.toPixel(p)
		fillPath(z, img, rayColor, line(x0, y0, x1, y1, width))
		fillPath(z, img, rayColor, square(x1, y1, 3*width))
	}

	for i, p := range origins {
		x, y := fit.toPixel(p)
		fillPath(z, img, ramp(ts[i]), circle(x, y, 5*width))
	}

	if ss > 1 {
		img = Downsample(img, opts.Size)
	}

	if n := len(origins); n > 0 {
		labelCamera(img, fit, origins[0], 0, ss)
		if n > 1 {
			labelCamera(img, fit, origins[n-1], n-1, ss)
		}
	}
	return img
}

// ramp maps t=1 (first camera) to blue and t=0 (last) to orange.
func ramp(t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	return color.NRGBA{
		R: uint8(255*(1-t) + 60*t),
		G: uint8(150*(1-t) + 140*t),
		B: uint8(40*(1-t) + 255*t),
		A: 255,
	}
}

func labelCamera(img *image.NRGBA, fit viewport, p point, id, ss int) {
	x, y := fit.toPixel(p)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x)/ss+6, int(y)/ss-6),
	}
	d.DrawString(strconv.Itoa(id))
}

// viewport maps plane coordinates to pixels with a uniform scale and a margin.
type viewport struct {
	minU, maxV float64
	scale      float64
	pad        float64
}

func newViewport(pts []point, size int) viewport {
	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minU, maxU = math.Min(minU, p.u), math.Max(maxU, p.u)
		minV, maxV = math.Min(minV, p.v), math.Max(maxV, p.v)
	}
	span := math.Max(maxU-minU, maxV-minV)
	if span < 1e-9 {
		span = 1
	}
	pad := float64(size) * 0.1
	scale := (float64(size) - 2*pad) / span

	// Centre the shorter extent.
	cu := (minU + maxU) / 2
	cv := (minV + maxV) / 2
	half := span / 2
	return viewport{minU: cu - half, maxV: cv + half, scale: scale, pad: pad}
}

func (vp viewport) toPixel(p point) (float32, float32) {
	x := vp.pad + (p.u-vp.minU)*vp.scale
	y := vp.pad + (vp.maxV-p.v)*vp.scale
	return float32(x), float32(y)
}
