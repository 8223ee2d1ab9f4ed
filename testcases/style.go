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

var styleCases = []TestCase{
	{
		Name:  "dashes",
		Steps: offsetLines("-", "|", ";", "=", ":", "j"),
	},
	{
		Name:  "markers",
		Steps: offsetLines(" o", " +", " x", " s", " d", " .", " *", " ^", " v"),
	},
	{
		Name:  "filled_markers",
		Steps: offsetLines("-o#", "-s#", "-d#", "-^#", "-v#"),
	},
	{
		Name:  "colours",
		Steps: offsetLines("k", "r", "g", "b", "c", "m", "y", "h"),
	},
	{
		Name:  "dark_colours",
		Steps: offsetLines("K", "R", "G", "B", "C", "M", "Y", "H"),
	},
	{
		Name:  "shades",
		Steps: offsetLines("{b1}", "{b3}", "{b5}", "{b7}", "{b9}"),
	},
	{
		Name:  "widths",
		Steps: offsetLines("k1", "k2", "k3", "k5", "k8"),
	},
	{
		Name: "grid_style",
		Steps: []Step{
			Grid{On: true, Style: "xy", Color: "{r8}"},
			PlotY{Y: []float64{2, 3, 5, 7, 11, 13}, Style: "k-s"},
		},
	},
}

// offsetLines draws one straight line per style, stacked vertically and
// labelled with the style string.
func offsetLines(styles ...string) []Step {
	var steps []Step
	for i, st := range styles {
		y := float64(len(styles) - i)
		steps = append(steps, Plot{
			X:      []float64{0, 1, 2, 3, 4},
			Y:      []float64{y, y + 0.3, y, y + 0.3, y},
			Style:  st,
			Legend: "\"" + st + "\"",
		})
	}
	return append(steps, Legend{X: 1, Y: 0.5})
}
