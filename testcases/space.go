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

var spaceCases = []TestCase{
	{
		Name: "helix",
		Steps: []Step{
			helix(4, 200, "b", "helix"),
			Legend{X: 1, Y: 1},
		},
	},
	{
		Name: "points",
		Steps: []Step{
			Plot3{
				X:     []float64{0, 1, 0, 1, 0.5},
				Y:     []float64{0, 0, 1, 1, 0.5},
				Z:     []float64{0, 1, 1, 0, 2},
				Style: " o#",
			},
			Title("Points"),
		},
	},
	{
		// A 2D series after a 3D one is drawn on the floor of the box.
		Name: "shadow",
		Steps: []Step{
			helix(2, 100, "r", ""),
			Plot{X: mapf(linspace(0, 4*math.Pi, 100), math.Cos), Y: mapf(linspace(0, 4*math.Pi, 100), math.Sin), Style: "{h6}"},
		},
	},
	{
		Name: "log_z",
		Steps: []Step{
			Plot3{
				X: []float64{1, 2, 3, 4},
				Y: []float64{4, 3, 2, 1},
				Z: []float64{1, 10, 100, 1000},
			},
			SetLog{Z: true},
		},
	},
}

// helix returns a spiral with the given number of turns.
func helix(turns float64, n int, style, legend string) Step {
	t := linspace(0, 2*math.Pi*turns, n)
	return Plot3{
		X:      mapf(t, math.Cos),
		Y:      mapf(t, math.Sin),
		Z:      linspace(0, turns, n),
		Style:  style,
		Legend: legend,
	}
}
