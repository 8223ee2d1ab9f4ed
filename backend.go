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

import "seehuhn.de/go/figure/canvas"

// Backend creates the drawing surfaces used by [Figure.Save].
type Backend interface {
	// NewCanvas returns a fresh canvas of the given pixel size.
	NewCanvas(width, height int) (Canvas, error)
}

// Canvas is the drawing engine which receives the configuration and draw
// calls of one rendering pass.  The order of the calls matters, see
// [Figure.Save].
type Canvas interface {
	LoadFont(name string) error
	SetFontSize(pt float64)

	SetRanges2D(xMin, xMax, yMin, yMax float64)
	SetRanges3D(xMin, xMax, yMin, yMax, zMin, zMax float64)
	Rotate(theta, phi float64)
	Box()
	Subplot(layout string)

	// Label sets the label of axis 'x', 'y' or 'z'.  pos runs from -1
	// (start of the axis) to 1 (end of the axis).
	Label(axis byte, text string, pos float64)

	// SetFunc installs curvilinear coordinate transforms.  An empty
	// string leaves the axis linear.
	SetFunc(xFunc, yFunc, zFunc string) error

	Grid(style, color string)
	Axis()

	FPlot(expr, style, legend string) error
	Plot(xs, ys []float64, style, legend string) error
	Plot3(xs, ys, zs []float64, style, legend string) error

	Legend(x, y float64)
	Title(text string)

	WritePNG(path string) error
	WriteEPS(path string) error
	WritePDF(path string) error

	// Close releases the resources held by the canvas.
	Close() error
}

// defaultBackend draws with the built-in vector canvas.
type defaultBackend struct{}

func (defaultBackend) NewCanvas(width, height int) (Canvas, error) {
	return canvas.New(width, height)
}
