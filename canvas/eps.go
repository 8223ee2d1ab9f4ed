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
	"io"

	vcanvas "github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// mmPerPt converts PostScript points to the millimetres used by the
// vector renderer.
const mmPerPt = 25.4 / 72

// EncodeEPS writes the display list to w as an Encapsulated PostScript
// file.  One pixel corresponds to one PostScript point.
func (c *Canvas) EncodeEPS(w io.Writer) error {
	return c.vectorCanvas().Write(w, renderers.EPS())
}

// WriteEPS writes the canvas to the file fname in EPS format.
func (c *Canvas) WriteEPS(fname string) error {
	return writeFile(fname, c.EncodeEPS)
}

// vectorCanvas replays the display list onto a vector canvas.  The vector
// canvas has its origin in the bottom left corner and measures lengths
// in millimetres.
func (c *Canvas) vectorCanvas() *vcanvas.Canvas {
	w, h := float64(c.width), float64(c.height)
	out := vcanvas.New(w*mmPerPt, h*mmPerPt)
	ctx := vcanvas.NewContext(out)

	ctx.SetFillColor(vcanvas.White)
	ctx.SetStrokeColor(vcanvas.Transparent)
	ctx.DrawPath(0, 0, vcanvas.Rectangle(w*mmPerPt, h*mmPerPt))

	for _, it := range c.items {
		p := &vcanvas.Path{}
		for cmd, pts := range it.path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				p.MoveTo(pts[0].X*mmPerPt, (h-pts[0].Y)*mmPerPt)
			case path.CmdLineTo:
				p.LineTo(pts[0].X*mmPerPt, (h-pts[0].Y)*mmPerPt)
			case path.CmdCubeTo:
				p.CubeTo(
					pts[0].X*mmPerPt, (h-pts[0].Y)*mmPerPt,
					pts[1].X*mmPerPt, (h-pts[1].Y)*mmPerPt,
					pts[2].X*mmPerPt, (h-pts[2].Y)*mmPerPt)
			case path.CmdClose:
				p.Close()
			}
		}

		if it.fill {
			ctx.SetFillColor(it.col)
			ctx.SetStrokeColor(vcanvas.Transparent)
		} else {
			ctx.SetFillColor(vcanvas.Transparent)
			ctx.SetStrokeColor(it.col)
			ctx.SetStrokeWidth(it.width * mmPerPt)
			ctx.SetStrokeCapper(capper(it.cap))
			ctx.SetStrokeJoiner(joiner(it.join))
			dash := make([]float64, len(it.dash))
			for i, d := range it.dash {
				dash[i] = d * mmPerPt
			}
			ctx.SetDashes(0, dash...)
		}
		ctx.DrawPath(0, 0, p)
	}
	return out
}

func capper(c graphics.LineCapStyle) vcanvas.Capper {
	switch c {
	case graphics.LineCapRound:
		return vcanvas.RoundCap
	case graphics.LineCapSquare:
		return vcanvas.SquareCap
	default:
		return vcanvas.ButtCap
	}
}

func joiner(j graphics.LineJoinStyle) vcanvas.Joiner {
	switch j {
	case graphics.LineJoinRound:
		return vcanvas.RoundJoin
	case graphics.LineJoinBevel:
		return vcanvas.BevelJoin
	default:
		return vcanvas.MiterJoin
	}
}
