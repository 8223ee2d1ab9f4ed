package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillDisc fills a polygonal disc, the shape of a large marker.
func BenchmarkFillDisc(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := New(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			disc := discPath(float64(size)/2, float64(size)/2, float64(size)*0.45, 64)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(disc, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorDisc fills the same disc with x/image/vector.
func BenchmarkVectorDisc(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			disc := discPath(float64(size)/2, float64(size)/2, float64(size)*0.45, 64)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for i, pt := range disc.Coords {
					if i == 0 {
						r.MoveTo(float32(pt.X), float32(pt.Y))
					} else {
						r.LineTo(float32(pt.X), float32(pt.Y))
					}
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeSeries strokes a sampled sine curve, as drawn for a
// typical line plot.
func BenchmarkStrokeSeries(b *testing.B) {
	const size = 800
	clip := rect.Rect{URx: size, URy: size}
	r := New(clip)

	p := &path.Data{}
	for i := range 1000 {
		x := float64(i) * size / 1000
		pt := vec.Vec2{X: x, Y: size/2 + size/3*math.Sin(x/40)}
		if i == 0 {
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
		} else {
			p.Cmds = append(p.Cmds, path.CmdLineTo)
		}
		p.Coords = append(p.Coords, pt)
	}

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 2
		r.Stroke(p, func(y, xMin int, coverage []float32) {})
	}
}

func discPath(cx, cy, radius float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	p := &path.Data{}
	appendPolygon(p, pts)
	return p
}
