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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterizes the outline of p, using Width, Cap, Join, MiterLimit,
// Dash and DashPhase.
//
// The outline is built as a union of positively oriented polygons (one
// per segment, join and cap) which is then filled with the nonzero rule,
// so that overlapping pieces do not cancel out.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.flatten(p)

	r.polygons = r.polygons[:0]
	for i, pts := range r.polys {
		if len(r.Dash) > 0 && dashTotal(r.Dash) > 0 {
			if r.closed[i] && len(pts) > 1 {
				pts = append(pts, pts[0])
			}
			r.dashPolyline(pts, func(piece []vec.Vec2) {
				r.strokePolyline(piece, false)
			})
			continue
		}
		r.strokePolyline(pts, r.closed[i])
	}

	r.outline.Cmds = r.outline.Cmds[:0]
	r.outline.Coords = r.outline.Coords[:0]
	for _, poly := range r.polygons {
		appendPolygon(&r.outline, poly)
	}
	r.Fill(&r.outline, emit)
}

// flatten splits p into polylines, one per subpath.  Consecutive
// duplicate points are dropped.
func (r *Rasterizer) flatten(p *path.Data) {
	for i := range r.polys {
		r.polys[i] = r.polys[i][:0]
	}
	r.polys = r.polys[:0]
	r.closed = r.closed[:0]

	add := func(_, b vec.Vec2) {
		cur := &r.polys[len(r.polys)-1]
		if n := len(*cur); n > 0 && (*cur)[n-1].Sub(b).Length() < zeroLengthThreshold {
			return
		}
		*cur = append(*cur, b)
	}
	begin := func(pt vec.Vec2) {
		if len(r.polys) < cap(r.polys) {
			r.polys = r.polys[:len(r.polys)+1]
			r.polys[len(r.polys)-1] = append(r.polys[len(r.polys)-1][:0], pt)
		} else {
			r.polys = append(r.polys, []vec.Vec2{pt})
		}
		r.closed = append(r.closed, false)
	}

	var cur vec.Vec2
	started := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			begin(cur)
			started = true
			k++
		case path.CmdLineTo:
			if !started {
				begin(cur)
				started = true
			}
			add(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if !started {
				begin(cur)
				started = true
			}
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], add)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if !started {
				begin(cur)
				started = true
			}
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if started {
				r.closed[len(r.closed)-1] = true
				pts := r.polys[len(r.polys)-1]
				cur = pts[0]
				if n := len(pts); n > 1 && pts[n-1] == pts[0] {
					r.polys[len(r.polys)-1] = pts[:n-1]
				}
			}
			started = false
		}
	}
}

// strokePolyline adds the outline pieces for one polyline.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	if len(pts) == 2 && pts[0].Sub(pts[1]).Length() < zeroLengthThreshold {
		// zero-length dash
		pts = pts[:1]
	}
	if len(pts) == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addCircle(pts[0], d)
		case graphics.LineCapSquare:
			r.addPolygon(
				vec.Vec2{X: pts[0].X - d, Y: pts[0].Y - d},
				vec.Vec2{X: pts[0].X + d, Y: pts[0].Y - d},
				vec.Vec2{X: pts[0].X + d, Y: pts[0].Y + d},
				vec.Vec2{X: pts[0].X - d, Y: pts[0].Y + d},
			)
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if closed && n > 2 {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		t, ok := unit(b.Sub(a))
		if !ok {
			continue
		}
		nv := normal(t).Mul(d)
		r.addPolygon(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	first, last := 1, n-1
	if closed && n > 2 {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		here := pts[i%n]
		next := pts[(i+1)%n]
		r.addJoin(prev, here, next, d)
	}

	if !closed || n <= 2 {
		if t, ok := unit(pts[0].Sub(pts[1])); ok {
			r.addCap(pts[0], t, d)
		}
		if t, ok := unit(pts[n-1].Sub(pts[n-2])); ok {
			r.addCap(pts[n-1], t, d)
		}
	}
}

// addJoin fills the wedge on the outer side of the corner at here.
func (r *Rasterizer) addJoin(prev, here, next vec.Vec2, d float64) {
	t1, ok1 := unit(here.Sub(prev))
	t2, ok2 := unit(next.Sub(here))
	if !ok1 || !ok2 {
		return
	}
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && t1.X*t2.X+t1.Y*t2.Y > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(here, d)
		return
	}

	s := 1.0
	if cross > 0 {
		s = -1
	}
	n1 := normal(t1).Mul(s)
	n2 := normal(t2).Mul(s)
	p1 := here.Add(n1.Mul(d))
	p2 := here.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		c := n1.X*n2.X + n1.Y*n2.Y
		if 1+c > 1e-12 && math.Sqrt(2/(1+c)) <= r.MiterLimit {
			m := here.Add(n1.Add(n2).Mul(d / (1 + c)))
			r.addPolygon(here, p1, m, p2)
			return
		}
	}
	r.addPolygon(here, p1, p2)
}

// addCap adds the cap at the end point p of a stroke.  The unit vector t
// points away from the stroke.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		nv := normal(t).Mul(d)
		q := p.Add(t.Mul(d))
		r.addPolygon(p.Add(nv), q.Add(nv), q.Sub(nv), p.Sub(nv))
	}
}

// addCircle adds a polygon approximating a circle, fine enough for the
// current flatness.
func (r *Rasterizer) addCircle(c vec.Vec2, radius float64) {
	n := 8
	if radius > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/radius))))
	}
	n = min(n, 256)
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: c.X + radius*math.Cos(phi), Y: c.Y + radius*math.Sin(phi)}
	}
	r.addPolygon(pts...)
}

// addPolygon records a polygon with positive orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(a) < zeroLengthThreshold {
		return
	}
	poly := make([]vec.Vec2, len(pts))
	if a > 0 {
		copy(poly, pts)
	} else {
		for i, p := range pts {
			poly[len(pts)-1-i] = p
		}
	}
	r.polygons = append(r.polygons, poly)
}

// dashPolyline splits pts into the "on" pieces of the dash pattern.
func (r *Rasterizer) dashPolyline(pts []vec.Vec2, emit func([]vec.Vec2)) {
	total := dashTotal(r.Dash)
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= r.Dash[idx] {
		phase -= r.Dash[idx]
		idx = (idx + 1) % len(r.Dash)
	}
	left := r.Dash[idx] - phase
	on := idx%2 == 0

	r.dashBuf = r.dashBuf[:0]
	if on {
		r.dashBuf = append(r.dashBuf, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			pt := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				r.dashBuf = append(r.dashBuf, pt)
				emit(r.dashBuf)
				r.dashBuf = r.dashBuf[:0]
			} else {
				r.dashBuf = append(r.dashBuf, pt)
			}
			on = !on
			idx = (idx + 1) % len(r.Dash)
			left = r.Dash[idx]
		}
		left -= segLen - pos
		if on {
			r.dashBuf = append(r.dashBuf, b)
		}
	}
	if on && len(r.dashBuf) > 1 {
		emit(r.dashBuf)
	}
}

func dashTotal(dash []float64) float64 {
	var total float64
	for _, d := range dash {
		total += d
	}
	return total
}

func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// normal returns t rotated by 90 degrees.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

func appendPolygon(p *path.Data, poly []vec.Vec2) {
	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, poly[0])
	for _, pt := range poly[1:] {
		p.Cmds = append(p.Cmds, path.CmdLineTo)
		p.Coords = append(p.Coords, pt)
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
}

const collinearityThreshold = 1e-6
