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
	"errors"
	"image/color"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestNewSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, -1}, {MaxSize + 1, 10}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrSize) {
			t.Errorf("New(%d, %d): got %v, want ErrSize", size[0], size[1], err)
		}
	}
	c, err := New(300, 200)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 300 || h != 200 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}

func TestLoadFont(t *testing.T) {
	c, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"heros", "regular", "mono", "bold", "italic"} {
		if err := c.LoadFont(name); err != nil {
			t.Errorf("LoadFont(%q): %v", name, err)
		}
	}
	if err := c.LoadFont("comic"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("LoadFont(comic): got %v, want ErrUnknownFont", err)
	}
}

func TestTextWidth(t *testing.T) {
	c, err := New(400, 400)
	if err != nil {
		t.Fatal(err)
	}
	short := c.textWidth("i")
	long := c.textWidth("iiii")
	if short <= 0 || math.Abs(long-4*short) > 0.02*long {
		t.Errorf("widths %g and %g", short, long)
	}
	c.SetFontSize(12)
	if w := c.textWidth("i"); math.Abs(w-2*short) > 0.05*w {
		t.Errorf("12pt width %g, want about %g", w, 2*short)
	}

	n := c.Len()
	c.text("Hello", vec.Vec2{X: 10, Y: 10}, 0, 0, false, black)
	c.text("", vec.Vec2{X: 10, Y: 10}, 0, 0, false, black)
	if c.Len() != n+1 {
		t.Errorf("text added %d items, want 1", c.Len()-n)
	}
}

func TestParseStyle(t *testing.T) {
	blue, _ := shade('b', 5)
	cases := []struct {
		in     string
		ok     bool
		check  func(s style) bool
		reason string
	}{
		{"b", true, func(s style) bool { return s.hasColor && s.col == blue }, "blue"},
		{"", true, func(s style) bool { return !s.hasColor && s.width == 1 && !s.noLine }, "defaults"},
		{"r|", true, func(s style) bool { return slices.Equal(s.dash, dashPatterns['|']) }, "long dashes"},
		{"r:-", true, func(s style) bool { return s.dash == nil && !s.dots }, "last dash wins"},
		{"o#", true, func(s style) bool { return s.marker == 'o' && s.filled }, "filled circle"},
		{"g 3", true, func(s style) bool { return s.noLine && s.width == 3 }, "no line, width 3"},
		{"{h7}", true, func(s style) bool { return s.hasColor && s.col.R > 128 && s.col.R == s.col.G }, "light grey"},
		{"{q5}", false, func(s style) bool { return !s.hasColor }, "bad shade"},
		{"{b5", false, func(s style) bool { return true }, "unterminated"},
		{"bQ", false, func(s style) bool { return s.hasColor }, "unknown letter"},
	}
	for _, tc := range cases {
		s, ok := parseStyle(tc.in)
		if ok != tc.ok {
			t.Errorf("parseStyle(%q): ok = %t, want %t", tc.in, ok, tc.ok)
		}
		if !tc.check(s) {
			t.Errorf("parseStyle(%q): %s check failed: %+v", tc.in, tc.reason, s)
		}
	}
}

func TestShade(t *testing.T) {
	near := func(a, b uint8) bool {
		return math.Abs(float64(a)-float64(b)) <= 2
	}
	for code, base := range baseColors {
		col, ok := shade(code, 5)
		if !ok || !near(col.R, base.R) || !near(col.G, base.G) || !near(col.B, base.B) {
			t.Errorf("shade(%c, 5) = %v, want %v", code, col, base)
		}
		if dark, _ := shade(code, 0); dark != black {
			t.Errorf("shade(%c, 0) = %v, want black", code, dark)
		}
	}
	light, _ := shade('h', 7)
	dark, _ := shade('h', 3)
	if !(light.R > 128 && dark.R < 128) {
		t.Errorf("grey shades: light %v, dark %v", light, dark)
	}
	if _, ok := shade('q', 5); ok {
		t.Error("unknown colour code accepted")
	}
}

func TestColorCycle(t *testing.T) {
	c, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	var got []color.NRGBA
	for range len(seriesColors) + 1 {
		st, _ := parseStyle("")
		got = append(got, c.resolve(&st).col)
	}
	if got[0] == got[1] || got[0] != got[len(seriesColors)] {
		t.Errorf("colour cycle %v", got)
	}
	st, _ := parseStyle("k")
	c.resolve(&st)
	if c.nextColor != len(seriesColors)+1 {
		t.Error("explicit colour advanced the cycle")
	}
}

func TestClipSegment(t *testing.T) {
	cases := []struct {
		a, b   point
		ok     bool
		ca, cb point
	}{
		{point{0.2, 0.2}, point{0.8, 0.8}, true, point{0.2, 0.2}, point{0.8, 0.8}},
		{point{-1, 0.5}, point{2, 0.5}, true, point{0, 0.5}, point{1, 0.5}},
		{point{0.5, 0.5}, point{0.5, 3}, true, point{0.5, 0.5}, point{0.5, 1}},
		{point{-1, -1}, point{-0.5, 2}, false, point{}, point{}},
		{point{1.5, 0}, point{3, 1}, false, point{}, point{}},
	}
	for _, tc := range cases {
		ca, cb, ok := clipSegment(tc.a, tc.b, 2)
		if ok != tc.ok {
			t.Errorf("clip %v-%v: ok = %t", tc.a, tc.b, ok)
			continue
		}
		if !ok {
			continue
		}
		for i := range 2 {
			if math.Abs(ca[i]-tc.ca[i]) > 1e-6 || math.Abs(cb[i]-tc.cb[i]) > 1e-6 {
				t.Errorf("clip %v-%v = %v-%v, want %v-%v", tc.a, tc.b, ca, cb, tc.ca, tc.cb)
				break
			}
		}
	}

	// The third coordinate only counts in 3D.
	if _, _, ok := clipSegment(point{0.5, 0.5, 5}, point{0.6, 0.6, 6}, 2); !ok {
		t.Error("2D clipping looked at z")
	}
	if _, _, ok := clipSegment(point{0.5, 0.5, 5}, point{0.6, 0.6, 6}, 3); ok {
		t.Error("3D clipping ignored z")
	}
}

func countMoves(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdMoveTo {
			n++
		}
	}
	return n
}

func TestPolyline(t *testing.T) {
	c, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	nan := math.NaN()
	pts := []point{{0.1, 0.1}, {0.2, 0.5}, {nan, nan}, {0.3, 0.3}, {0.4, 0.2}, {0.5, 2}, {0.6, 0.5}, {0.7, 0.5}}
	p := c.polyline(pts)
	// pieces: 0-1, 3-4-exit, re-entry-6-7
	if got := countMoves(p); got != 3 {
		t.Errorf("got %d subpaths, want 3", got)
	}
	for _, q := range p.Coords {
		if q.X < c.box.LLx-1e-6 || q.X > c.box.URx+1e-6 || q.Y < c.box.LLy-1e-6 || q.Y > c.box.URy+1e-6 {
			t.Errorf("point %v outside the plot box %v", q, c.box)
		}
	}
}

func TestAxisRange(t *testing.T) {
	cases := []struct {
		lo, hi   float64
		min, max float64
	}{
		{1, 3, 1, 3},
		{math.Inf(1), math.Inf(-1), -1, 1},
		{5, 1, -1, 1},
		{2, 2, 1, 3},
		{math.NaN(), 1, -1, 1},
	}
	for _, tc := range cases {
		var a axis
		a.setRange(tc.lo, tc.hi)
		if a.min != tc.min || a.max != tc.max {
			t.Errorf("setRange(%g, %g) = [%g, %g], want [%g, %g]",
				tc.lo, tc.hi, a.min, a.max, tc.min, tc.max)
		}
		if a.norm(a.min) != 0 || a.norm(a.max) != 1 {
			t.Errorf("setRange(%g, %g): norm not onto [0, 1]", tc.lo, tc.hi)
		}
	}
}

func TestLogAxis(t *testing.T) {
	var a axis
	a.setRange(1, 1000)
	if err := a.setFunc("lg(x)", "x"); err != nil {
		t.Fatal(err)
	}
	if got := a.norm(10); math.Abs(got-1.0/3) > 1e-9 {
		t.Errorf("norm(10) = %g, want 1/3", got)
	}
	want := []float64{1, 10, 100, 1000}
	if got := a.ticks(10); !slices.Equal(got, want) {
		t.Errorf("ticks = %v, want %v", got, want)
	}

	// non-positive lower bounds are raised
	a.setRange(0, 100)
	if err := a.setFunc("lg(x)", "x"); err != nil {
		t.Fatal(err)
	}
	if a.min != 0.1 {
		t.Errorf("min = %g, want 0.1", a.min)
	}

	// a transform which is undefined on the whole range fails
	a.setRange(-10, -1)
	if err := a.setFunc("lg(x)", "x"); err == nil {
		t.Error("lg on negative range accepted")
	}
	if a.fn != nil {
		t.Error("failed transform left installed")
	}
	if err := a.setFunc("3 *", "x"); err == nil {
		t.Error("syntax error accepted")
	}
}

func TestLinearTicks(t *testing.T) {
	var a axis
	a.setRange(0, 10)
	ticks := a.ticks(6)
	if len(ticks) < 2 || len(ticks) > 6 {
		t.Fatalf("got %d ticks: %v", len(ticks), ticks)
	}
	if ticks[0] != 0 || ticks[len(ticks)-1] != 10 {
		t.Errorf("ticks %v do not span [0, 10]", ticks)
	}
	if !slices.IsSorted(ticks) {
		t.Errorf("ticks %v not sorted", ticks)
	}
}

func TestSeries(t *testing.T) {
	c, err := New(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	c.SetRanges2D(0, 1, 0, 1)

	n := c.Len()
	if err := c.Plot([]float64{0, 0.5, 1}, []float64{0, 1, 0}, "r", "tent"); err != nil {
		t.Fatal(err)
	}
	if c.Len() != n+1 {
		t.Errorf("line plot added %d items", c.Len()-n)
	}

	n = c.Len()
	if err := c.Plot([]float64{0.5, 2}, []float64{0.5, 0.5}, " o", ""); err != nil {
		t.Fatal(err)
	}
	if c.Len() != n+1 {
		t.Errorf("marker plot added %d items, want one visible marker", c.Len()-n)
	}

	if err := c.Plot([]float64{1}, nil, "", ""); !errors.Is(err, ErrLength) {
		t.Errorf("Plot: got %v, want ErrLength", err)
	}
	if err := c.Plot3([]float64{1}, []float64{1}, nil, "", ""); !errors.Is(err, ErrLength) {
		t.Errorf("Plot3: got %v, want ErrLength", err)
	}

	if err := c.FPlot("3*x +", "", ""); err == nil {
		t.Error("FPlot accepted a syntax error")
	}
	n = c.Len()
	if err := c.FPlot("1/(x-0.5)", "b", "pole"); err != nil {
		t.Fatal(err)
	}
	if c.Len() != n+1 {
		t.Errorf("FPlot added %d items", c.Len()-n)
	}

	if len(c.legend) != 2 {
		t.Errorf("got %d legend entries, want 2", len(c.legend))
	}
	n = c.Len()
	c.Legend(1, 1)
	if c.Len() <= n {
		t.Error("Legend drew nothing")
	}
}

func TestEmptyLegend(t *testing.T) {
	c, err := New(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	c.Legend(1, 1)
	if c.Len() != 0 {
		t.Errorf("empty legend added %d items", c.Len())
	}
}

func TestProjection3D(t *testing.T) {
	c, err := New(300, 200)
	if err != nil {
		t.Fatal(err)
	}
	c.SetRanges3D(0, 1, 0, 1, 0, 1)
	c.Rotate(60, 30)
	for m := range 8 {
		p := point{float64(m & 1), float64(m >> 1 & 1), float64(m >> 2)}
		q := c.device(p)
		if q.X < 0 || q.X > 300 || q.Y < 0 || q.Y > 200 {
			t.Errorf("corner %v projects to %v, outside the canvas", p, q)
		}
	}

	// higher z is further up on the screen
	lo := c.device(point{0.5, 0.5, 0})
	hi := c.device(point{0.5, 0.5, 1})
	if hi.Y >= lo.Y {
		t.Errorf("z axis points down: %v -> %v", lo, hi)
	}

	n := c.Len()
	c.Box()
	c.Axis()
	c.Grid("xyz", "{h7}")
	if c.Len() <= n {
		t.Error("3D decorations drew nothing")
	}
}

func TestSubplotMargins(t *testing.T) {
	c, err := New(400, 400)
	if err != nil {
		t.Fatal(err)
	}
	c.Subplot("")
	plain := c.box
	c.Subplot("<_^")
	if !(c.box.LLx > plain.LLx && c.box.URy < plain.URy && c.box.LLy > plain.LLy) {
		t.Errorf("margins not reserved: %v vs %v", c.box, plain)
	}
	if c.box.URx != plain.URx {
		t.Errorf("right margin changed: %v vs %v", c.box, plain)
	}
}
