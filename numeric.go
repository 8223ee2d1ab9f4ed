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

import "golang.org/x/exp/constraints"

// Number is the set of element types accepted by [Float64s].
type Number interface {
	constraints.Integer | constraints.Float
}

// Float64s returns a new slice with the elements of v converted to float64.
// The result never aliases v.
func Float64s[T Number](v []T) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = float64(x)
	}
	return res
}

// Seq returns the sequence 1, 2, ..., n.
func Seq(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i + 1)
	}
	return res
}
