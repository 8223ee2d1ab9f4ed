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
	"math"
)

// Extent is the closed interval [Min, Max] covered by data along one axis.
// The empty extent has Min = +Inf and Max = -Inf.
type Extent struct {
	Min, Max float64
}

// EmptyExtent returns the extent which contains no values.
func EmptyExtent() Extent {
	return Extent{Min: math.Inf(1), Max: math.Inf(-1)}
}

// ExtentOf returns the smallest extent containing all of values.
// NaN and infinite values are ignored.
func ExtentOf(values []float64) Extent {
	e := EmptyExtent()
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		e.Min = min(e.Min, v)
		e.Max = max(e.Max, v)
	}
	return e
}

// IsEmpty reports whether e contains no values.
func (e Extent) IsEmpty() bool {
	return !(e.Min <= e.Max)
}

// Fold returns the smallest extent containing both e and o.
// The operation is commutative and associative, with the empty extent
// as the neutral element.
func (e Extent) Fold(o Extent) Extent {
	return Extent{Min: min(e.Min, o.Min), Max: max(e.Max, o.Max)}
}

func (e Extent) String() string {
	if e.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%g, %g]", e.Min, e.Max)
}

// rangeTracker keeps the viewport of a figure.
//
// While auto is set, the extents of all added series are folded in.
// After an explicit range has been set, auto is cleared for good and the
// stored extents are never touched by later folds.
type rangeTracker struct {
	x, y, z Extent
	auto    bool
}

func newRangeTracker() rangeTracker {
	return rangeTracker{
		x:    EmptyExtent(),
		y:    EmptyExtent(),
		z:    EmptyExtent(),
		auto: true,
	}
}

// fold2D extends the x and y extents.  The vertical margin is always
// zero; it is shared with the 3D path.
func (r *rangeTracker) fold2D(xs, ys []float64) {
	r.foldXY(ExtentOf(xs), ExtentOf(ys), 0)
}

// fold3D extends all three extents.
func (r *rangeTracker) fold3D(xs, ys, zs []float64) {
	if !r.auto {
		return
	}
	r.z = r.z.Fold(ExtentOf(zs))
	r.foldXY(ExtentOf(xs), ExtentOf(ys), 0)
}

func (r *rangeTracker) foldXY(x, y Extent, vertMargin float64) {
	if !r.auto {
		return
	}
	r.x = r.x.Fold(x)
	r.y = r.y.Fold(Extent{Min: y.Min - vertMargin, Max: y.Max + vertMargin})
}

// set installs explicit x and y ranges and disables auto-ranging.
func (r *rangeTracker) set(x, y Extent) {
	r.x = x
	r.y = y
	r.auto = false
}
