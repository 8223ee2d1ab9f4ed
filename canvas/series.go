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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/figure/mathexpr"
)

// FPlotSamples is the number of points at which [Canvas.FPlot] evaluates
// a function.
const FPlotSamples = 200

// ErrLength is returned when the coordinate slices of a series have
// different lengths.
var ErrLength = errors.New("canvas: coordinate slices have different lengths")

// Plot draws the series (xs[i], ys[i]).  In a 3D plot, the series is
// drawn on the bottom of the bounding cube.
func (c *Canvas) Plot(xs, ys []float64, style, legend string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d, %d", ErrLength, len(xs), len(ys))
	}
	z := c.axes[2].min
	pts := make([]point, len(xs))
	for i := range xs {
		pts[i] = c.normalize(xs[i], ys[i], z)
	}
	c.series(pts, style, legend)
	return nil
}

// Plot3 draws the series (xs[i], ys[i], zs[i]).
func (c *Canvas) Plot3(xs, ys, zs []float64, style, legend string) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return fmt.Errorf("%w: %d, %d, %d", ErrLength, len(xs), len(ys), len(zs))
	}
	pts := make([]point, len(xs))
	for i := range xs {
		pts[i] = c.normalize(xs[i], ys[i], zs[i])
	}
	c.series(pts, style, legend)
	return nil
}

// FPlot draws the graph of the function given by the formula expr in x,
// sampled at [FPlotSamples] points across the x range.  The line is
// interrupted where the function value is not a finite number.
func (c *Canvas) FPlot(expr, style, legend string) error {
	f, err := mathexpr.Compile(expr, "x")
	if err != nil {
		return err
	}
	ax := &c.axes[0]
	z := c.axes[2].min
	pts := make([]point, FPlotSamples)
	for i := range pts {
		t := float64(i) / (FPlotSamples - 1)
		x := ax.min + t*(ax.max-ax.min)
		if ax.log && ax.min > 0 {
			x = ax.min * math.Pow(ax.max/ax.min, t)
		}
		y, err := f.Eval(x)
		if err != nil || !isFinite(y) {
			pts[i] = point{math.NaN(), math.NaN(), math.NaN()}
			continue
		}
		pts[i] = c.normalize(x, y, z)
	}
	c.series(pts, style, legend)
	return nil
}

func (c *Canvas) series(pts []point, styleSpec, legend string) {
	st, _ := parseStyle(styleSpec)
	ls := c.resolve(&st)
	if !st.noLine {
		c.addPath(c.polyline(pts), ls)
	}
	if st.marker != 0 {
		dim := c.dims()
		for _, p := range pts {
			if p.finite() && inside(p, dim) {
				c.marker(c.device(p), st, ls)
			}
		}
	}
	c.addLegend(legend, st, ls)
}

// marker draws the marker of st centred at the device position at.
func (c *Canvas) marker(at vec.Vec2, st style, ls lineStyle) {
	r := 2*c.unit + ls.width
	solid := lineStyle{col: ls.col, width: ls.width, cap: graphics.LineCapButt}
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: at.X + dx*r, Y: at.Y + dy*r}
	}

	var outline *path.Data
	switch st.marker {
	case 'o':
		outline = circle(at, r)
	case '.':
		c.addFill(circle(at, max(ls.width, c.unit)), ls.col)
		return
	case 's':
		outline = polygon(pt(-1, -1), pt(1, -1), pt(1, 1), pt(-1, 1))
	case 'd':
		outline = polygon(pt(0, -1.3), pt(1.3, 0), pt(0, 1.3), pt(-1.3, 0))
	case '^':
		outline = polygon(pt(0, -1.3), pt(1.1, 0.7), pt(-1.1, 0.7))
	case 'v':
		outline = polygon(pt(0, 1.3), pt(1.1, -0.7), pt(-1.1, -0.7))
	case '+':
		c.addPath((&path.Data{}).
			MoveTo(pt(-1, 0)).LineTo(pt(1, 0)).
			MoveTo(pt(0, -1)).LineTo(pt(0, 1)), solid)
		return
	case 'x':
		c.addPath((&path.Data{}).
			MoveTo(pt(-0.8, -0.8)).LineTo(pt(0.8, 0.8)).
			MoveTo(pt(-0.8, 0.8)).LineTo(pt(0.8, -0.8)), solid)
		return
	case '*':
		c.addPath((&path.Data{}).
			MoveTo(pt(-1, 0)).LineTo(pt(1, 0)).
			MoveTo(pt(-0.5, -0.87)).LineTo(pt(0.5, 0.87)).
			MoveTo(pt(-0.5, 0.87)).LineTo(pt(0.5, -0.87)), solid)
		return
	default:
		return
	}
	if st.filled {
		c.addFill(outline, ls.col)
	} else {
		c.addPath(outline, solid)
	}
}

// circleK is the control point distance for approximating a quarter
// circle by a cubic Bézier curve.
const circleK = 0.5522847498

func circle(c vec.Vec2, r float64) *path.Data {
	k := circleK * r
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: c.X + x, Y: c.Y + y}
	}
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}
