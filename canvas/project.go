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

package canvas

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/figure/mathexpr"
)

var axisNames = [3]string{"x", "y", "z"}

// axis maps data values along one coordinate to [0, 1].
type axis struct {
	min, max float64

	// fn is the coordinate transform, nil for linear axes.
	fn  *mathexpr.Func
	log bool

	// lin maps transformed values to [0, 1].
	lin scale.Linear
}

// setRange sets the data range.  Invalid ranges become [-1, 1], and
// single values are widened by 1 on both sides.  If the current
// transform is not defined on the new range, the axis becomes linear.
func (a *axis) setRange(lo, hi float64) {
	switch {
	case !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0):
		lo, hi = -1, 1
	case lo == hi:
		lo, hi = lo-1, hi+1
	}
	a.min, a.max = lo, hi
	if a.update() != nil {
		a.fn = nil
		a.log = false
		a.update()
	}
}

// setFunc installs the transform src, a formula in the variable name.
// On a logarithmic axis a non-positive lower bound is raised to a
// thousandth of the upper bound.
func (a *axis) setFunc(src, name string) error {
	if src == "" {
		a.fn = nil
		a.log = false
		return a.update()
	}
	fn, err := mathexpr.Compile(src, name)
	if err != nil {
		return err
	}
	isLog := mathexpr.IsLog(src, name)
	if isLog && a.min <= 0 && a.max > 0 {
		a.min = a.max / 1000
	}
	oldFn, oldLog := a.fn, a.log
	a.fn, a.log = fn, isLog
	if err := a.update(); err != nil {
		a.fn, a.log = oldFn, oldLog
		a.update()
		return err
	}
	return nil
}

func (a *axis) update() error {
	t0, t1 := a.apply(a.min), a.apply(a.max)
	if !isFinite(t0) || !isFinite(t1) || t0 == t1 {
		name := "identity"
		if a.fn != nil {
			name = a.fn.String()
		}
		return fmt.Errorf("canvas: transform %q is not usable on [%g, %g]", name, a.min, a.max)
	}
	a.lin = scale.Linear{Min: t0, Max: t1}
	return nil
}

// apply evaluates the coordinate transform at v.
func (a *axis) apply(v float64) float64 {
	if a.fn == nil {
		return v
	}
	t, err := a.fn.Eval(v)
	if err != nil {
		return math.NaN()
	}
	return t
}

// norm maps the data value v to [0, 1].  Values outside the range map
// outside the unit interval.
func (a *axis) norm(v float64) float64 {
	return a.lin.Map(a.apply(v))
}

// ticks returns at most maxTicks tick positions inside the axis range.
// Logarithmic axes use powers of ten where possible.
func (a *axis) ticks(maxTicks int) []float64 {
	var major []float64
	if a.log {
		if s, err := scale.NewLog(a.min, a.max, 10); err == nil {
			major, _ = s.Ticks(scale.TickOptions{Max: maxTicks})
		}
	}
	if len(major) < 2 {
		major, _ = scale.Linear{Min: a.min, Max: a.max}.Ticks(scale.TickOptions{Max: maxTicks})
	}

	eps := (a.max - a.min) * 1e-9
	res := major[:0]
	for _, t := range major {
		if t >= a.min-eps && t <= a.max+eps {
			if math.Abs(t) < eps {
				t = 0
			}
			res = append(res, t)
		}
	}
	return res
}

// point is a position in normalised coordinates, with all visible
// points inside the unit cube.
type point [3]float64

func (p point) finite() bool {
	return isFinite(p[0]) && isFinite(p[1]) && isFinite(p[2])
}

func (p point) lerp(q point, t float64) point {
	return point{
		p[0] + t*(q[0]-p[0]),
		p[1] + t*(q[1]-p[1]),
		p[2] + t*(q[2]-p[2]),
	}
}

// normalize maps data coordinates to normalised coordinates.
func (c *Canvas) normalize(x, y, z float64) point {
	n := point{c.axes[0].norm(x), c.axes[1].norm(y), 0}
	if c.is3D {
		n[2] = c.axes[2].norm(z)
	}
	return n
}

// dims is the number of coordinates used for clipping.
func (c *Canvas) dims() int {
	if c.is3D {
		return 3
	}
	return 2
}

// device maps normalised coordinates to device pixels.  In 3D mode, the
// unit cube is centred in the plot area, rotated and projected
// orthographically.
func (c *Canvas) device(n point) vec.Vec2 {
	b := c.box
	if !c.is3D {
		return vec.Vec2{
			X: b.LLx + n[0]*(b.URx-b.LLx),
			Y: b.URy - n[1]*(b.URy-b.LLy),
		}
	}
	x, y, z := 2*n[0]-1, 2*n[1]-1, 2*n[2]-1
	x1 := x*c.cosPhi - y*c.sinPhi
	y1 := x*c.sinPhi + y*c.cosPhi
	up := y1*c.cosTheta + z*c.sinTheta
	s := min(b.URx-b.LLx, b.URy-b.LLy) / (2 * math.Sqrt(3))
	return vec.Vec2{
		X: (b.LLx+b.URx)/2 + s*x1,
		Y: (b.LLy+b.URy)/2 - s*up,
	}
}

// center returns the device position of the centre of the plot area.
func (c *Canvas) center() vec.Vec2 {
	return c.device(point{0.5, 0.5, 0.5})
}

// clipEps lets points on the boundary of the unit cube survive rounding.
const clipEps = 1e-9

// clipSegment clips the segment from a to b to the unit cube, using the
// first dim coordinates.  It uses the Liang-Barsky algorithm.
func clipSegment(a, b point, dim int) (point, point, bool) {
	t0, t1 := 0.0, 1.0
	for i := range dim {
		d := b[i] - a[i]
		for _, pq := range [2][2]float64{{-d, a[i] + clipEps}, {d, 1 + clipEps - a[i]}} {
			p, q := pq[0], pq[1]
			if p == 0 {
				if q < 0 {
					return a, b, false
				}
				continue
			}
			r := q / p
			if p < 0 {
				if r > t1 {
					return a, b, false
				}
				t0 = max(t0, r)
			} else {
				if r < t0 {
					return a, b, false
				}
				t1 = min(t1, r)
			}
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.lerp(b, t0)
	}
	if t1 < 1 {
		cb = a.lerp(b, t1)
	}
	return ca, cb, true
}

// inside reports whether p lies in the unit cube.
func inside(p point, dim int) bool {
	for i := range dim {
		if !(p[i] >= -clipEps && p[i] <= 1+clipEps) {
			return false
		}
	}
	return true
}

// polyline converts a sequence of normalised points into a path, clipped
// to the unit cube.  Non-finite points break the line.
func (c *Canvas) polyline(pts []point) *path.Data {
	p := &path.Data{}
	dim := c.dims()
	open := false
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !a.finite() || !b.finite() {
			open = false
			continue
		}
		ca, cb, ok := clipSegment(a, b, dim)
		if !ok {
			open = false
			continue
		}
		if !open || ca != a {
			p.MoveTo(c.device(ca))
		}
		p.LineTo(c.device(cb))
		open = cb == b
	}
	return p
}

// segment returns the path of a single clipped line segment.
func (c *Canvas) segment(a, b point) *path.Data {
	return c.polyline([]point{a, b})
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
