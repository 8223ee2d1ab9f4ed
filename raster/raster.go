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

// Package raster converts paths in device coordinates into anti-aliased
// pixel coverage.  It is the pixel back end of the PNG writer.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  The coverage slice
// starts at pixel xMin and is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates,
// stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasterizer computes per-pixel coverage for filled and stroked paths.
// All coordinates are device pixels, with y growing downwards.
//
// A Rasterizer is not safe for concurrent use.  Reusing one instance
// for many paths avoids allocations once the internal buffers have grown.
type Rasterizer struct {
	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style used at the ends of open stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to Width.
	MiterLimit float64

	// Dash alternates on and off lengths, in pixels.  Nil means solid.
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bbFirst                bool
	bbX0, bbX1, bbY0, bbY1 float64

	// stroke buffers
	outline  path.Data
	polys    [][]vec.Vec2
	closed   []bool
	dashBuf  []vec.Vec2
	polygons [][]vec.Vec2
}

// New returns a Rasterizer for the given clip rectangle, with a one pixel
// wide solid stroke and PDF defaults for caps and joins.
func New(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters but keeps the buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// Fill rasterizes p using the nonzero winding rule.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bbFirst = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
	if len(r.edges) == 0 {
		return
	}
	r.sweep(emit)
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}
	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e = edge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	if r.bbFirst {
		r.bbX0, r.bbX1 = min(e.x0, e.x1), max(e.x0, e.x1)
		r.bbY0, r.bbY1 = e.y0, e.y1
		r.bbFirst = false
		return
	}
	r.bbX0 = min(r.bbX0, e.x0, e.x1)
	r.bbX1 = max(r.bbX1, e.x0, e.x1)
	r.bbY0 = min(r.bbY0, e.y0)
	r.bbY1 = max(r.bbY1, e.y1)
}

// sweep walks the scanlines of the edge bounding box, keeping a list of
// the edges which intersect the current scanline.
func (r *Rasterizer) sweep(emit EmitFunc) {
	xMin := max(int(math.Floor(r.bbX0)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbX1))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbY0)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the part of e inside the scanline [top, bot) to the
// cover and area buffers.  The buffers are indexed by x - xMin.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return
	}
	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	lo, hi := min(xa, xb), max(xa, xb)
	pl, ph := int(math.Floor(lo)), int(math.Floor(hi))

	if pl == ph {
		r.deposit(pl, e.dir*float32(yb-ya), (xa+xb)/2, xMin, xMax)
		return
	}

	// The edge crosses pixel columns.  Since x is linear in y, the
	// vertical extent inside a column is proportional to the
	// horizontal extent.
	slope := math.Abs(e.dxdy)
	for px := pl; px <= ph; px++ {
		cl := max(lo, float64(px))
		cr := min(hi, float64(px+1))
		if cr <= cl {
			continue
		}
		r.deposit(px, e.dir*float32((cr-cl)/slope), (cl+cr)/2, xMin, xMax)
	}
}

func (r *Rasterizer) deposit(px int, c float32, xMid float64, xMin, xMax int) {
	if px < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if px >= xMax {
		return
	}
	i := px - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-(xMid-float64(px)))
}

// integrateNonZero turns the accumulated cover/area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of a scanline and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Length() / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments,
// choosing the number of segments by Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
)
