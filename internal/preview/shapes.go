package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type vertex struct{ x, y float32 }

// fillPath rasterizes the closed polygon poly onto dst with an opaque colour.
func fillPath(z *vector.Rasterizer, dst draw.Image, c color.NRGBA, poly []vertex) {
	if len(poly) < 3 {
		return
	}
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(poly[0].x, poly[0].y)
	for _, p := range poly[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func circle(cx, cy, r float32) []vertex {
	const segments = 24
	poly := make([]vertex, segments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / segments
		poly[i] = vertex{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))}
	}
	return poly
}

func square(cx, cy, half float32) []vertex {
	return []vertex{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	}
}

// line returns a quad of the given width around the segment (x0,y0)-(x1,y1).
func line(x0, y0, x1, y1, width float32) []vertex {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return []vertex{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
}
