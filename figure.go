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

// Package figure describes 2D and 3D charts and renders them to image
// files.
//
// A [Figure] collects data series, function plots, labels, a legend, a
// grid, a title and the axis ranges.  Nothing is drawn until
// [Figure.Save] is called, which replays the accumulated description
// against a fresh [Canvas] in a fixed order and writes the result as PNG
// or EPS.
//
// Unless explicit ranges are set, the viewport is the union of the
// extents of all data series, independent of the order in which the
// series were added.  Function plots do not contribute to the viewport.
package figure

import (
	"fmt"
	"log/slog"
	"math"
)

// Defaults for a newly created figure.
const (
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultFontSize  = 6.0
	DefaultGridStyle = "xy"
	DefaultGridColor = "{h7}"
)

// Figure is a chart under construction.
//
// A Figure is not safe for concurrent use.
type Figure struct {
	state

	backend Backend
	log     *slog.Logger
}

// state is the accumulated description of a figure.
type state struct {
	width, height int
	fontSize      float64

	showAxis bool

	showGrid  bool
	gridStyle string
	gridColor string

	showLegend   bool
	legendX      float64
	legendY      float64
	title        string
	xLabel       LabelSpec
	yLabel       LabelSpec
	xFunc, yFunc string
	zFunc        string

	// is3D is set by the first 3D series and never cleared.
	is3D bool

	ranges rangeTracker
	queue  []plotRequest
}

// Option configures a [Figure].
type Option func(*Figure)

// WithBackend sets the drawing backend used by [Figure.Save].
func WithBackend(b Backend) Option {
	return func(f *Figure) {
		f.backend = b
	}
}

// WithLogger sets the logger used for warnings and for tracing the
// rendering pipeline.
func WithLogger(l *slog.Logger) Option {
	return func(f *Figure) {
		f.log = l
	}
}

// New returns an empty figure with the default settings: 800x800 pixels,
// 6pt text, axis and a light grey grid shown, no legend, and automatic
// ranges.
func New(opts ...Option) *Figure {
	f := &Figure{
		state: state{
			width:     DefaultWidth,
			height:    DefaultHeight,
			fontSize:  DefaultFontSize,
			showAxis:  true,
			showGrid:  true,
			gridStyle: DefaultGridStyle,
			gridColor: DefaultGridColor,
			legendX:   1,
			legendY:   1,
			ranges:    newRangeTracker(),
		},
		backend: defaultBackend{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetWidth sets the width of the output image in pixels.
func (f *Figure) SetWidth(px int) {
	f.width = px
}

// SetHeight sets the height of the output image in pixels.
func (f *Figure) SetHeight(px int) {
	f.height = px
}

// SetFontSize sets the size of all text, in points.
func (f *Figure) SetFontSize(pt float64) {
	f.fontSize = pt
}

// Grid configures the grid lines.  style selects the directions
// ("x", "y", "xy", ...) and color is a colour specification understood by
// the backend.
func (f *Figure) Grid(on bool, style, color string) {
	f.showGrid = on
	f.gridStyle = style
	f.gridColor = color
}

// GridDefault switches the grid on or off and restores the default grid
// style and colour.
func (f *Figure) GridDefault(on bool) {
	f.Grid(on, DefaultGridStyle, DefaultGridColor)
}

// ShowAxis switches the drawing of the axes on or off.
func (f *Figure) ShowAxis(on bool) {
	f.showAxis = on
}

// XLabel sets the label of the x-axis.  pos gives the position along the
// axis, from -1 (left) to 1 (right).  An empty text removes the label.
func (f *Figure) XLabel(text string, pos float64) {
	f.xLabel = LabelSpec{Text: text, Pos: pos}
}

// YLabel sets the label of the y-axis.  pos gives the position along the
// axis, from -1 (bottom) to 1 (top).  An empty text removes the label.
func (f *Figure) YLabel(text string, pos float64) {
	f.yLabel = LabelSpec{Text: text, Pos: pos}
}

// Legend shows the legend with its corner at (x, y), relative to the plot
// area.  Positions far outside the unit square are accepted but reported
// as a warning, since the legend will most likely be invisible.
func (f *Figure) Legend(x, y float64) {
	f.showLegend = true
	f.legendX = x
	f.legendY = y
	if math.Abs(x) > 2 || math.Abs(y) > 2 {
		f.log.Warn("legend is probably outside the canvas",
			slog.Float64("x", x), slog.Float64("y", y))
	}
}

// Title sets the title shown above the plot.
func (f *Figure) Title(text string) {
	f.title = text
}

// SetLog switches the selected axes to a logarithmic scale.
// Axes whose flag is false keep their current scale.
func (f *Figure) SetLog(logX, logY, logZ bool) {
	if logX {
		f.xFunc = "lg(x)"
	}
	if logY {
		f.yFunc = "lg(y)"
	}
	if logZ {
		f.zFunc = "lg(z)"
	}
}

// Ranges sets the axis ranges explicitly.  From then on, added series no
// longer change the viewport.
func (f *Figure) Ranges(xMin, xMax, yMin, yMax float64) error {
	if xMin > xMax || yMin > yMax {
		return fmt.Errorf("x [%g, %g], y [%g, %g]: %w",
			xMin, xMax, yMin, yMax, ErrOrderingViolation)
	}
	f.ranges.set(Extent{Min: xMin, Max: xMax}, Extent{Min: yMin, Max: yMax})
	return nil
}

// FPlot adds the graph of the function given by the formula expr, for
// example "3*x^2 + exp(x)".  The formula is only checked when the figure
// is saved.
func (f *Figure) FPlot(expr, style, legend string) {
	f.queue = append(f.queue, functionPlot{expr: expr, style: style, legend: legend})
}

// PlotY adds a series with the values ys at x = 1, 2, ..., len(ys).
func (f *Figure) PlotY(ys []float64, style, legend string) error {
	return f.Plot(Seq(len(ys)), ys, style, legend)
}

// Plot adds the 2D series (xs[i], ys[i]).
// The slices are copied.
func (f *Figure) Plot(xs, ys []float64, style, legend string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("plot: %d x-values, %d y-values: %w",
			len(xs), len(ys), ErrLengthMismatch)
	}
	s := series2D{
		xs:     Float64s(xs),
		ys:     Float64s(ys),
		style:  style,
		legend: legend,
	}
	f.ranges.fold2D(s.xs, s.ys)
	f.queue = append(f.queue, s)
	return nil
}

// Plot3 adds the 3D series (xs[i], ys[i], zs[i]).  After the first call,
// the figure is drawn as a 3D plot.
func (f *Figure) Plot3(xs, ys, zs []float64, style, legend string) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return fmt.Errorf("plot3: %d x-values, %d y-values, %d z-values: %w",
			len(xs), len(ys), len(zs), ErrLengthMismatch)
	}
	f.is3D = true
	s := series3D{
		xs:     Float64s(xs),
		ys:     Float64s(ys),
		zs:     Float64s(zs),
		style:  style,
		legend: legend,
	}
	f.ranges.fold3D(s.xs, s.ys, s.zs)
	f.queue = append(f.queue, s)
	return nil
}

// Extents returns the current viewport.  Axes without data are empty.
func (f *Figure) Extents() (x, y, z Extent) {
	return f.ranges.x, f.ranges.y, f.ranges.z
}

// AutoRanges reports whether the viewport is still computed from the data.
func (f *Figure) AutoRanges() bool {
	return f.ranges.auto
}

// Is3D reports whether the figure will be drawn as a 3D plot.
func (f *Figure) Is3D() bool {
	return f.is3D
}

// Len returns the number of queued plots.
func (f *Figure) Len() int {
	return len(f.queue)
}
