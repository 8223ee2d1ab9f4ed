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
	stdcolor "image/color"
	"io"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// EncodePDF writes the display list to out as a single page PDF file.
// One pixel corresponds to one PDF point.
func (c *Canvas) EncodePDF(out io.Writer) error {
	w, h := float64(c.width), float64(c.height)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.WriteSinglePage(out, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// The display list uses a top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	var dash []float64
	for _, it := range c.items {
		if it.fill {
			page.SetFillColor(rgb(it.col))
		} else {
			page.SetStrokeColor(rgb(it.col))
			page.SetLineWidth(it.width)
			page.SetLineCap(it.cap)
			page.SetLineJoin(it.join)
			if !slices.Equal(dash, it.dash) {
				page.SetLineDash(it.dash, 0)
				dash = it.dash
			}
		}

		for cmd, pts := range it.path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		if it.fill {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	return page.Close()
}

// WritePDF writes the canvas to the file fname as a single page PDF
// file.
func (c *Canvas) WritePDF(fname string) error {
	return writeFile(fname, c.EncodePDF)
}

func rgb(col stdcolor.NRGBA) color.DeviceRGB {
	return color.DeviceRGB{
		float64(col.R) / 255,
		float64(col.G) / 255,
		float64(col.B) / 255,
	}
}
