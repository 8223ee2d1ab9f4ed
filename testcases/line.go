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

import "math"

var lineCases = []TestCase{
	{
		Name: "single",
		Steps: []Step{
			Plot{X: []float64{1, 2, 3}, Y: []float64{2, 4, 3}},
		},
	},
	{
		Name: "index",
		Steps: []Step{
			PlotY{Y: []float64{3, 1, 4, 1, 5, 9, 2, 6}, Style: "r o"},
		},
	},
	{
		Name:   "two_series",
		Width:  600,
		Height: 400,
		Steps: []Step{
			Plot{X: linspace(0, 2*math.Pi, 50), Y: mapf(linspace(0, 2*math.Pi, 50), math.Sin), Legend: "sin"},
			Plot{X: linspace(0, 2*math.Pi, 50), Y: mapf(linspace(0, 2*math.Pi, 50), math.Cos), Legend: "cos"},
			Legend{X: 1, Y: 1},
		},
	},
	{
		Name: "labelled",
		Steps: []Step{
			Plot{X: []float64{0, 1, 2, 3, 4}, Y: []float64{0, 1, 4, 9, 16}, Style: "b-o"},
			XLabel{Text: "time [s]"},
			YLabel{Text: "distance [m]"},
			Title("Free fall"),
		},
	},
	{
		Name: "fixed_ranges",
		Steps: []Step{
			Ranges{XMin: -1, XMax: 5, YMin: -2, YMax: 2},
			Plot{X: []float64{-3, 0, 3, 6}, Y: []float64{-3, 1, -1, 3}, Style: "m"},
		},
	},
	{
		Name: "gaps",
		Steps: []Step{
			Plot{
				X: []float64{0, 1, 2, 3, 4, 5, 6},
				Y: []float64{1, 2, math.NaN(), 3, 2, math.Inf(1), 1},
			},
		},
	},
	{
		Name: "no_grid",
		Steps: []Step{
			Grid{On: false},
			PlotY{Y: []float64{1, 3, 2, 4}},
		},
	},
	{
		Name:  "small",
		Width: 200, Height: 150,
		Steps: []Step{
			PlotY{Y: []float64{1, 2, 1, 2, 1}},
			Title("Small"),
		},
	},
}

// linspace returns n equally spaced values from a to b.
func linspace(a, b float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return res
}

func mapf(xs []float64, f func(float64) float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
