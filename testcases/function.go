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

var functionCases = []TestCase{
	{
		Name: "sine",
		Steps: []Step{
			Ranges{XMin: -10, XMax: 10, YMin: -1.5, YMax: 1.5},
			FPlot{Expr: "sin(x)", Legend: "sin(x)"},
			FPlot{Expr: "sin(x)/x", Style: "r|", Legend: "sin(x)/x"},
			Legend{X: 1, Y: 1},
		},
	},
	{
		Name: "pole",
		Steps: []Step{
			Ranges{XMin: -2, XMax: 2, YMin: -10, YMax: 10},
			FPlot{Expr: "1/x"},
			FPlot{Expr: "1/(x*x - 1)", Style: "g;"},
		},
	},
	{
		Name: "sqrt_domain",
		Steps: []Step{
			Ranges{XMin: -4, XMax: 4, YMin: 0, YMax: 2},
			FPlot{Expr: "sqrt(x)", Style: "b2"},
		},
	},
	{
		// The data extent is used for the x range.
		Name: "over_data",
		Steps: []Step{
			Plot{X: []float64{0, 1, 2, 3, 4}, Y: []float64{0.1, 0.9, 4.2, 8.8, 16.1}, Style: " o", Legend: "data"},
			FPlot{Expr: "x^2", Style: "r", Legend: "x^2"},
			Legend{X: 0, Y: 1},
		},
	},
	{
		Name: "loglog",
		Steps: []Step{
			Ranges{XMin: 1, XMax: 1000, YMin: 1, YMax: 1e6},
			SetLog{X: true, Y: true},
			FPlot{Expr: "x^2", Legend: "x^2"},
			FPlot{Expr: "x", Style: "r=", Legend: "x"},
			Legend{X: 0, Y: 1},
		},
	},
	{
		Name: "semilog",
		Steps: []Step{
			Plot{X: []float64{0, 1, 2, 3, 4, 5}, Y: []float64{1, 3, 8, 25, 70, 190}, Style: "k-o"},
			SetLog{Y: true},
			YLabel{Text: "count"},
		},
	},
}
