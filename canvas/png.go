// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/figure/raster"
)

// Image renders the display list onto a white background.
func (c *Canvas) Image() *image.RGBA {
	bounds := image.Rect(0, 0, c.width, c.height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(white), image.Point{}, draw.Src)

	mask := image.NewAlpha(bounds)
	clip := rect.Rect{URx: float64(c.width), URy: float64(c.height)}
	r := raster.New(clip)

	var touched image.Rectangle
	emit := func(y, xMin int, coverage []float32) {
		if y < 0 || y >= c.height {
			return
		}
		x0 := max(xMin, 0)
		x1 := min(xMin+len(coverage), c.width)
		if x0 >= x1 {
			return
		}
		row := mask.Pix[y*mask.Stride:]
		for x := x0; x < x1; x++ {
			v := coverage[x-xMin]
			a := uint8(min(max(v, 0), 1)*255 + 0.5)
			row[x] = max(row[x], a)
		}
		touched = touched.Union(image.Rect(x0, y, x1, y+1))
	}

	for _, it := range c.items {
		r.Reset(clip)
		touched = image.Rectangle{}
		if it.fill {
			r.Fill(it.path, emit)
		} else {
			r.Width = it.width
			r.Cap = it.cap
			r.Join = it.join
			r.Dash = it.dash
			r.Stroke(it.path, emit)
		}
		if touched.Empty() {
			continue
		}
		draw.DrawMask(img, touched, image.NewUniform(it.col), image.Point{}, mask, touched.Min, draw.Over)
		for y := touched.Min.Y; y < touched.Max.Y; y++ {
			clear(mask.Pix[y*mask.Stride+touched.Min.X : y*mask.Stride+touched.Max.X])
		}
	}
	return img
}

// EncodePNG writes the rendered image to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// WritePNG renders the canvas and writes it to the file fname.
func (c *Canvas) WritePNG(fname string) error {
	return writeFile(fname, c.EncodePNG)
}
