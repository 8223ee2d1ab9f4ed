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

// Package canvas is the default drawing backend for figures.
//
// A [Canvas] records all drawing operations in a display list of filled
// and stroked paths, in device pixel coordinates with the origin in the
// top-left corner.  The display list can be written as a PNG image, an
// EPS file or a PDF file.  Text is converted to glyph outlines, so that
// all output formats look the same.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// MaxSize is the largest accepted canvas width or height in pixels.
const MaxSize = 1 << 14

// ErrSize is returned by [New] for invalid canvas dimensions.
var ErrSize = errors.New("canvas: invalid size")

// item is one entry of the display list.
type item struct {
	path *path.Data
	col  color.NRGBA
	fill bool

	// stroke parameters, in pixels
	width float64
	dash  []float64
	cap   graphics.LineCapStyle
	join  graphics.LineJoinStyle
}

// Canvas is a drawing surface for one figure.
//
// Configuration calls (fonts, ranges, layout and transforms) affect the
// drawing calls which follow them.  A Canvas is not safe for concurrent
// use.
type Canvas struct {
	width, height int

	// unit is the length of one "point" on this canvas, in pixels.
	unit float64

	face     *face
	fontSize float64 // in pixels

	items []item

	// box is the plot area in device coordinates.  LLy is the top edge.
	box rect.Rect

	axes [3]axis
	is3D bool

	// viewing rotation for 3D plots
	sinTheta, cosTheta float64
	sinPhi, cosPhi     float64

	legend    []legendEntry
	nextColor int
}

// New allocates a canvas of the given size in pixels.  The canvas starts
// with the default font at 6pt, a 2D layout without extra margins, and
// the ranges [-1, 1] on all axes.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		unit:   float64(min(width, height)) / 400,
	}
	if err := c.LoadFont("heros"); err != nil {
		return nil, err
	}
	c.SetFontSize(6)
	for i := range c.axes {
		c.axes[i].setRange(math.Inf(1), math.Inf(-1))
	}
	c.Rotate(60, 30)
	c.Subplot("")
	return c, nil
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Len returns the number of paths in the display list.
func (c *Canvas) Len() int {
	return len(c.items)
}

// Close releases the display list.
func (c *Canvas) Close() error {
	c.items = nil
	c.legend = nil
	return nil
}

// LoadFont selects the font used for all text.  The known names are
// "heros" and "regular" (a sans-serif font), "mono", "bold" and
// "italic".
func (c *Canvas) LoadFont(name string) error {
	f, err := loadFace(name)
	if err != nil {
		return err
	}
	c.face = f
	return nil
}

// SetFontSize sets the text size in points.
func (c *Canvas) SetFontSize(pt float64) {
	c.fontSize = pt * c.unit * 4 / 3
}

// Subplot sets up a 2D plot area filling the canvas.  The layout string
// reserves extra space for a y-label ('<'), an x-label ('_') and a title
// ('^').
func (c *Canvas) Subplot(layout string) {
	fs := c.fontSize
	left, right := 4*fs, 1.5*fs
	top, bottom := 1.2*fs, 2.2*fs
	for _, r := range layout {
		switch r {
		case '<':
			left += 1.6 * fs
		case '>':
			right += 1.6 * fs
		case '_':
			bottom += 1.6 * fs
		case '^':
			top += 2 * fs
		}
	}
	c.is3D = false
	c.box = c.margins(left, right, top, bottom)
}

func (c *Canvas) margins(left, right, top, bottom float64) rect.Rect {
	w, h := float64(c.width), float64(c.height)
	b := rect.Rect{LLx: left, LLy: top, URx: w - right, URy: h - bottom}
	if b.URx-b.LLx < w/4 {
		b.LLx, b.URx = w/8, w*7/8
	}
	if b.URy-b.LLy < h/4 {
		b.LLy, b.URy = h/8, h*7/8
	}
	return b
}

// SetRanges2D sets the x and y ranges.  Empty or inverted ranges are
// replaced by [-1, 1], and a range containing only one value is widened
// by 1 on both sides.
func (c *Canvas) SetRanges2D(xMin, xMax, yMin, yMax float64) {
	c.axes[0].setRange(xMin, xMax)
	c.axes[1].setRange(yMin, yMax)
}

// SetRanges3D sets the x, y and z ranges and switches the canvas to a 3D
// plot filling the whole canvas.
func (c *Canvas) SetRanges3D(xMin, xMax, yMin, yMax, zMin, zMax float64) {
	c.axes[0].setRange(xMin, xMax)
	c.axes[1].setRange(yMin, yMax)
	c.axes[2].setRange(zMin, zMax)
	c.is3D = true
	fs := c.fontSize
	c.box = c.margins(2*fs, 2*fs, 3*fs, 2*fs)
}

// Rotate sets the viewing angles for 3D plots, in degrees.  The data is
// first rotated by phi about the z-axis, and then tilted by theta about
// the x-axis.
func (c *Canvas) Rotate(theta, phi float64) {
	c.sinTheta, c.cosTheta = math.Sincos(theta * math.Pi / 180)
	c.sinPhi, c.cosPhi = math.Sincos(phi * math.Pi / 180)
}

// SetFunc installs coordinate transforms, given as formulas in x, y and
// z.  An empty formula makes the axis linear.  The transform must be
// finite at both ends of the axis range.
func (c *Canvas) SetFunc(xFunc, yFunc, zFunc string) error {
	for i, src := range []string{xFunc, yFunc, zFunc} {
		if err := c.axes[i].setFunc(src, axisNames[i]); err != nil {
			return err
		}
	}
	return nil
}

// addPath appends a path to the display list.
func (c *Canvas) addPath(p *path.Data, st lineStyle) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	c.items = append(c.items, item{
		path:  p,
		col:   st.col,
		width: st.width,
		dash:  st.dash,
		cap:   st.cap,
		join:  graphics.LineJoinRound,
	})
}

// addFill appends a filled path to the display list.
func (c *Canvas) addFill(p *path.Data, col color.NRGBA) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	c.items = append(c.items, item{path: p, col: col, fill: true})
}

// lineWidth is the width of a thin line, in pixels.
func (c *Canvas) lineWidth() float64 {
	return max(c.unit*0.6, 0.5)
}
