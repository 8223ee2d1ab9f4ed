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

package testcases

import (
	"fmt"

	"seehuhn.de/go/figure"
)

// TestCase defines a single figure.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels (0 means the default)
	Height int    // canvas height in pixels (0 means the default)
	Steps  []Step // the calls made on the figure, in order
}

// Step is one call on a figure.
type Step interface {
	apply(f *figure.Figure) error
}

// Plot adds a 2D series.
type Plot struct {
	X, Y   []float64
	Style  string
	Legend string
}

func (s Plot) apply(f *figure.Figure) error {
	return f.Plot(s.X, s.Y, s.Style, s.Legend)
}

// PlotY adds a 2D series against 1, 2, ..., n.
type PlotY struct {
	Y      []float64
	Style  string
	Legend string
}

func (s PlotY) apply(f *figure.Figure) error {
	return f.PlotY(s.Y, s.Style, s.Legend)
}

// Plot3 adds a 3D series.
type Plot3 struct {
	X, Y, Z []float64
	Style   string
	Legend  string
}

func (s Plot3) apply(f *figure.Figure) error {
	return f.Plot3(s.X, s.Y, s.Z, s.Style, s.Legend)
}

// FPlot adds the graph of a formula in x.
type FPlot struct {
	Expr   string
	Style  string
	Legend string
}

func (s FPlot) apply(f *figure.Figure) error {
	f.FPlot(s.Expr, s.Style, s.Legend)
	return nil
}

// Ranges fixes the x and y ranges.
type Ranges struct {
	XMin, XMax, YMin, YMax float64
}

func (s Ranges) apply(f *figure.Figure) error {
	return f.Ranges(s.XMin, s.XMax, s.YMin, s.YMax)
}

// SetLog switches axes to logarithmic scale.
type SetLog struct {
	X, Y, Z bool
}

func (s SetLog) apply(f *figure.Figure) error {
	f.SetLog(s.X, s.Y, s.Z)
	return nil
}

// XLabel sets the x-axis label.
type XLabel struct {
	Text string
	Pos  float64
}

func (s XLabel) apply(f *figure.Figure) error {
	f.XLabel(s.Text, s.Pos)
	return nil
}

// YLabel sets the y-axis label.
type YLabel struct {
	Text string
	Pos  float64
}

func (s YLabel) apply(f *figure.Figure) error {
	f.YLabel(s.Text, s.Pos)
	return nil
}

// Title sets the title.
type Title string

func (s Title) apply(f *figure.Figure) error {
	f.Title(string(s))
	return nil
}

// Legend enables the legend at the given position.
type Legend struct {
	X, Y float64
}

func (s Legend) apply(f *figure.Figure) error {
	f.Legend(s.X, s.Y)
	return nil
}

// Grid configures the grid.  Empty Style and Color select the defaults.
type Grid struct {
	On    bool
	Style string
	Color string
}

func (s Grid) apply(f *figure.Figure) error {
	style, color := s.Style, s.Color
	if style == "" {
		style = figure.DefaultGridStyle
	}
	if color == "" {
		color = figure.DefaultGridColor
	}
	f.Grid(s.On, style, color)
	return nil
}

// Build creates a new figure and applies the steps of tc.
func Build(tc TestCase, opts ...figure.Option) (*figure.Figure, error) {
	f := figure.New(opts...)
	if tc.Width > 0 {
		f.SetWidth(tc.Width)
	}
	if tc.Height > 0 {
		f.SetHeight(tc.Height)
	}
	for i, step := range tc.Steps {
		if err := step.apply(f); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", tc.Name, i+1, err)
		}
	}
	return f, nil
}
