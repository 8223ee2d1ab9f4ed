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

package figure

import (
	"fmt"
	"log/slog"
	"strings"
)

// Fixed settings of the rendering pass.
const (
	fontName   = "heros"
	viewTheta  = 60.0
	viewPhi    = 30.0
	defaultExt = ".eps"
)

// Save draws the figure and writes it to path.
//
// If path contains ".png" anywhere, a PNG image is written.  Otherwise, if
// path contains ".eps", an EPS file is written.  In all other cases ".eps"
// is appended to path and an EPS file is written.
//
// Save can be called more than once; every call starts from a fresh canvas.
// If an error occurs, no output file is created.
func (f *Figure) Save(path string) error {
	target, write := path, Canvas.WriteEPS
	switch {
	case strings.Contains(path, ".png"):
		write = Canvas.WritePNG
	case strings.Contains(path, ".eps"):
		// pass
	default:
		target = path + defaultExt
	}
	return f.render(path, target, write)
}

// SavePDF draws the figure and writes it to path in PDF format.
func (f *Figure) SavePDF(path string) error {
	return f.render(path, path, Canvas.WritePDF)
}

// render runs the drawing pipeline and finally calls write(c, target).
// The phase order is fixed: the canvas must be sized first, and axis labels
// must be set before the coordinate transforms.
func (f *Figure) render(path, target string, write func(Canvas, string) error) (err error) {
	fail := func(phase string, e error) error {
		return &SaveError{Path: path, Phase: phase, Err: e}
	}

	f.log.Debug("render", slog.String("phase", "canvas"),
		slog.Int("width", f.width), slog.Int("height", f.height))
	c, err := f.backend.NewCanvas(f.width, f.height)
	if err != nil {
		return fail("canvas", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fail("close", cerr)
		}
	}()

	hint := f.layoutHint()

	f.log.Debug("render", slog.String("phase", "font"))
	if err := c.LoadFont(fontName); err != nil {
		return fail("font", err)
	}
	c.SetFontSize(f.fontSize)

	x, y, z := f.ranges.x, f.ranges.y, f.ranges.z
	if f.is3D {
		f.log.Debug("render", slog.String("phase", "ranges"), slog.Bool("3d", true))
		c.SetRanges3D(x.Min, x.Max, y.Min, y.Max, z.Min, z.Max)
		c.Rotate(viewTheta, viewPhi)
		c.Box()
	} else {
		f.log.Debug("render", slog.String("phase", "ranges"), slog.String("layout", hint))
		c.Subplot(hint)
		c.SetRanges2D(x.Min, x.Max, y.Min, y.Max)
	}

	c.Label('x', f.xLabel.Text, f.xLabel.Pos)
	c.Label('y', f.yLabel.Text, f.yLabel.Pos)

	if err := c.SetFunc(f.xFunc, f.yFunc, f.zFunc); err != nil {
		return fail("transform", err)
	}

	if f.showGrid {
		c.Grid(f.gridStyle, f.gridColor)
	}
	if f.showAxis {
		c.Axis()
	}

	f.log.Debug("render", slog.String("phase", "plots"), slog.Int("count", len(f.queue)))
	for i, p := range f.queue {
		if err := p.render(c); err != nil {
			return fail(fmt.Sprintf("plot %d", i+1), err)
		}
	}

	if f.showLegend {
		c.Legend(f.legendX, f.legendY)
	}
	if f.title != "" {
		c.Title(f.title)
	}

	f.log.Debug("render", slog.String("phase", "write"), slog.String("file", target))
	if err := write(c, target); err != nil {
		return fail("write", err)
	}
	return nil
}

// layoutHint returns the subplot margin specification: "<" for a y-label,
// "_" for an x-label and "^" for a title, in this order.
func (f *Figure) layoutHint() string {
	var b strings.Builder
	if f.yLabel.IsSet() {
		b.WriteByte('<')
	}
	if f.xLabel.IsSet() {
		b.WriteByte('_')
	}
	if f.title != "" {
		b.WriteByte('^')
	}
	return b.String()
}
