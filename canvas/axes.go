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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Edges of the unit cube used for the three axes in 3D plots.  The axes
// run from start to start+e_i, where e_i is the unit vector of axis i.
var axisStart = [3]point{
	{0, 0, 0},
	{1, 0, 0},
	{0, 0, 0},
}

// Box draws a frame around the plot area.  In 3D plots this is the
// outline of the bounding cube.
func (c *Canvas) Box() {
	st := lineStyle{col: black, width: c.lineWidth(), cap: graphics.LineCapButt}
	if !c.is3D {
		c.addPath(c.polyline([]point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}), st)
		return
	}
	p := &path.Data{}
	for i := range 3 {
		j, k := (i+1)%3, (i+2)%3
		for m := range 4 {
			var a point
			a[j] = float64(m & 1)
			a[k] = float64(m >> 1)
			b := a
			b[i] = 1
			p.MoveTo(c.device(a))
			p.LineTo(c.device(b))
		}
	}
	c.addPath(p, st)
}

// Grid draws grid lines at the major ticks.  style selects the axes by
// name, for example "xy"; color is a colour specification like "{h7}".
func (c *Canvas) Grid(style, color string) {
	col, ok := parseColor(color)
	if !ok {
		col, _ = shade('h', 7)
	}
	st := lineStyle{col: col, width: c.lineWidth() * 0.7, cap: graphics.LineCapButt}
	p := &path.Data{}
	for i := range c.dims() {
		if !strings.Contains(style, axisNames[i]) {
			continue
		}
		// lines through the ticks of axis i run along the other axes
		j := (i + 1) % c.dims()
		for _, t := range c.axisTicks(i) {
			var a point
			a[i] = c.axes[i].norm(t)
			b := a
			b[j] = 1
			c.appendSegment(p, a, b)
			if c.is3D {
				k := 3 - i - j
				b2 := a
				b2[k] = 1
				c.appendSegment(p, a, b2)
			}
		}
	}
	c.addPath(p, st)
}

// Axis draws the axes with tick marks and tick labels.
func (c *Canvas) Axis() {
	st := lineStyle{col: black, width: c.lineWidth(), cap: graphics.LineCapSquare}
	p := &path.Data{}
	tickLen := 0.6 * c.fontSize
	for i := range c.dims() {
		a := c.axisPoint(i, 0)
		b := c.axisPoint(i, 1)
		c.appendSegment(p, a, b)
		dir := c.outward(i)
		for _, t := range c.axisTicks(i) {
			n := c.axisPoint(i, c.axes[i].norm(t))
			q := c.device(n)
			p.MoveTo(q)
			p.LineTo(q.Add(dir.Mul(tickLen)))
			lbl := q.Add(dir.Mul(tickLen + 0.3*c.fontSize))
			h, v := anchor(dir)
			c.text(formatTick(t), lbl, h, v, false, black)
		}
	}
	c.addPath(p, st)
}

// Label draws the label of axis 'x', 'y' or 'z'.  pos runs from -1 (start
// of the axis) to 1 (end of the axis).
func (c *Canvas) Label(axisName byte, text string, pos float64) {
	i := strings.IndexByte("xyz", axisName)
	if i < 0 || i >= c.dims() || text == "" {
		return
	}
	t := (pos + 1) / 2
	q := c.device(c.axisPoint(i, t))
	dir := c.outward(i)
	dist := 2.2 * c.fontSize
	if !c.is3D && i == 1 {
		dist = c.box.LLx - 0.3*c.fontSize
		c.text(text, vec.Vec2{X: q.X - dist, Y: q.Y}, t, 0, true, black)
		return
	}
	h, v := anchor(dir)
	if !c.is3D {
		h = t
		dist = 1.9 * c.fontSize
	}
	c.text(text, q.Add(dir.Mul(dist)), h, v, false, black)
}

// Title draws a title centred above the plot.
func (c *Canvas) Title(text string) {
	at := vec.Vec2{X: float64(c.width) / 2, Y: 0.5 * c.fontSize}
	size := c.fontSize
	c.fontSize = size * 1.4
	c.text(text, at, 0.5, 0, false, black)
	c.fontSize = size
}

// axisPoint returns the normalised position at fraction t along axis i.
func (c *Canvas) axisPoint(i int, t float64) point {
	p := axisStart[i]
	if !c.is3D {
		p = point{}
	}
	p[i] = t
	return p
}

// outward returns the device space unit vector pointing from axis i away
// from the plot.
func (c *Canvas) outward(i int) vec.Vec2 {
	if !c.is3D {
		if i == 0 {
			return vec.Vec2{X: 0, Y: 1}
		}
		return vec.Vec2{X: -1, Y: 0}
	}
	mid := c.device(c.axisPoint(i, 0.5))
	d := mid.Sub(c.center())
	if l := d.Length(); l > 1e-9 {
		return d.Mul(1 / l)
	}
	return vec.Vec2{X: 0, Y: 1}
}

// anchor chooses the text alignment for a label placed in direction dir
// from its reference point.
func anchor(dir vec.Vec2) (h, v float64) {
	h = 0.5 - 0.5*dir.X
	v = 0.5 - 0.5*dir.Y
	return h, v
}

// axisTicks returns the tick values of axis i, spaced for the current
// font size.
func (c *Canvas) axisTicks(i int) []float64 {
	a := c.device(c.axisPoint(i, 0))
	b := c.device(c.axisPoint(i, 1))
	n := int(b.Sub(a).Length() / (4 * c.fontSize))
	return c.axes[i].ticks(max(n, 2))
}

// appendSegment adds the clipped segment from a to b to p.
func (c *Canvas) appendSegment(p *path.Data, a, b point) {
	ca, cb, ok := clipSegment(a, b, c.dims())
	if !ok {
		return
	}
	p.MoveTo(c.device(ca))
	p.LineTo(c.device(cb))
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// legendEntry is one line of the legend.
type legendEntry struct {
	text string
	line lineStyle
	st   style
}

// Legend draws the legend for all labelled series drawn so far.  The
// position (x, y) is relative to the plot area, with (0, 0) the bottom
// left and (1, 1) the top right corner.  The legend is placed so that the
// same corner of the legend box is at this position.
func (c *Canvas) Legend(x, y float64) {
	if len(c.legend) == 0 {
		return
	}
	fs := c.fontSize
	sample := 2.5 * fs
	lineH := 1.3 * fs
	pad := 0.5 * fs

	w := 0.0
	for _, e := range c.legend {
		w = max(w, c.textWidth(e.text))
	}
	w += sample + 3*pad
	h := float64(len(c.legend))*lineH + 2*pad

	b := c.box
	ax := b.LLx + x*(b.URx-b.LLx)
	ay := b.URy - y*(b.URy-b.LLy)
	left := ax - clamp01(x)*w
	top := ay - (1-clamp01(y))*h

	frame := (&path.Data{}).
		MoveTo(vec.Vec2{X: left, Y: top}).
		LineTo(vec.Vec2{X: left + w, Y: top}).
		LineTo(vec.Vec2{X: left + w, Y: top + h}).
		LineTo(vec.Vec2{X: left, Y: top + h}).
		Close()
	c.addFill(frame, white)
	c.addPath(frame, lineStyle{col: black, width: c.lineWidth(), cap: graphics.LineCapButt})

	for k, e := range c.legend {
		mid := top + pad + (float64(k)+0.5)*lineH
		x0 := left + pad
		x1 := x0 + sample
		if !e.st.noLine {
			seg := (&path.Data{}).
				MoveTo(vec.Vec2{X: x0, Y: mid}).
				LineTo(vec.Vec2{X: x1, Y: mid})
			c.addPath(seg, e.line)
		}
		if e.st.marker != 0 {
			c.marker(vec.Vec2{X: (x0 + x1) / 2, Y: mid}, e.st, e.line)
		}
		c.text(e.text, vec.Vec2{X: x1 + pad, Y: mid}, 0, 0.5, false, black)
	}
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// addLegend remembers a labelled series for [Canvas.Legend].
func (c *Canvas) addLegend(text string, st style, ls lineStyle) {
	if text == "" {
		return
	}
	c.legend = append(c.legend, legendEntry{text: text, line: ls, st: st})
}
