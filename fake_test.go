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
	"errors"
	"fmt"
	"strings"
)

// recorder is a Backend which logs all canvas calls as strings.
type recorder struct {
	calls []string

	// failOn makes the call whose name starts with this prefix fail.
	failOn string

	closed int
}

func (r *recorder) NewCanvas(width, height int) (Canvas, error) {
	r.calls = append(r.calls, fmt.Sprintf("NewCanvas %d %d", width, height))
	if r.failOn == "NewCanvas" {
		return nil, errFake
	}
	return &fakeCanvas{r: r}, nil
}

var errFake = errors.New("fake backend failure")

type fakeCanvas struct {
	r *recorder
}

func (c *fakeCanvas) log(format string, args ...any) error {
	call := fmt.Sprintf(format, args...)
	c.r.calls = append(c.r.calls, call)
	if c.r.failOn != "" && strings.HasPrefix(call, c.r.failOn) {
		return errFake
	}
	return nil
}

func (c *fakeCanvas) LoadFont(name string) error { return c.log("LoadFont %s", name) }
func (c *fakeCanvas) SetFontSize(pt float64)     { c.log("SetFontSize %g", pt) }

func (c *fakeCanvas) SetRanges2D(xMin, xMax, yMin, yMax float64) {
	c.log("SetRanges2D %g %g %g %g", xMin, xMax, yMin, yMax)
}

func (c *fakeCanvas) SetRanges3D(xMin, xMax, yMin, yMax, zMin, zMax float64) {
	c.log("SetRanges3D %g %g %g %g %g %g", xMin, xMax, yMin, yMax, zMin, zMax)
}

func (c *fakeCanvas) Rotate(theta, phi float64) { c.log("Rotate %g %g", theta, phi) }
func (c *fakeCanvas) Box()                      { c.log("Box") }
func (c *fakeCanvas) Subplot(layout string)     { c.log("Subplot %q", layout) }

func (c *fakeCanvas) Label(axis byte, text string, pos float64) {
	c.log("Label %c %q %g", axis, text, pos)
}

func (c *fakeCanvas) SetFunc(xFunc, yFunc, zFunc string) error {
	return c.log("SetFunc %q %q %q", xFunc, yFunc, zFunc)
}

func (c *fakeCanvas) Grid(style, color string) { c.log("Grid %q %q", style, color) }
func (c *fakeCanvas) Axis()                    { c.log("Axis") }

func (c *fakeCanvas) FPlot(expr, style, legend string) error {
	return c.log("FPlot %q %q %q", expr, style, legend)
}

func (c *fakeCanvas) Plot(xs, ys []float64, style, legend string) error {
	return c.log("Plot %v %v %q %q", xs, ys, style, legend)
}

func (c *fakeCanvas) Plot3(xs, ys, zs []float64, style, legend string) error {
	return c.log("Plot3 %v %v %v %q %q", xs, ys, zs, style, legend)
}

func (c *fakeCanvas) Legend(x, y float64) { c.log("Legend %g %g", x, y) }
func (c *fakeCanvas) Title(text string)   { c.log("Title %q", text) }

func (c *fakeCanvas) WritePNG(path string) error { return c.log("WritePNG %s", path) }
func (c *fakeCanvas) WriteEPS(path string) error { return c.log("WriteEPS %s", path) }
func (c *fakeCanvas) WritePDF(path string) error { return c.log("WritePDF %s", path) }

func (c *fakeCanvas) Close() error {
	c.r.closed++
	return nil
}

// first returns the index of the first call starting with prefix, or -1.
func (r *recorder) first(prefix string) int {
	for i, call := range r.calls {
		if strings.HasPrefix(call, prefix) {
			return i
		}
	}
	return -1
}

// count returns the number of calls starting with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, call := range r.calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}
