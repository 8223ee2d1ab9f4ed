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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	f := New()
	if f.width != 800 || f.height != 800 {
		t.Errorf("size = %dx%d, want 800x800", f.width, f.height)
	}
	if f.fontSize != 6 {
		t.Errorf("font size = %g, want 6", f.fontSize)
	}
	if !f.showAxis || !f.showGrid || f.showLegend {
		t.Errorf("axis/grid/legend = %t/%t/%t, want true/true/false",
			f.showAxis, f.showGrid, f.showLegend)
	}
	if f.gridStyle != "xy" || f.gridColor != "{h7}" {
		t.Errorf("grid = %q %q", f.gridStyle, f.gridColor)
	}
	if f.legendX != 1 || f.legendY != 1 {
		t.Errorf("legend position = (%g, %g)", f.legendX, f.legendY)
	}
	if !f.AutoRanges() || f.Is3D() || f.Len() != 0 {
		t.Error("wrong initial range/3D/queue state")
	}
	x, y, z := f.Extents()
	if !x.IsEmpty() || !y.IsEmpty() || !z.IsEmpty() {
		t.Errorf("initial extents not empty: %v %v %v", x, y, z)
	}
}

func TestExtentFold(t *testing.T) {
	e := EmptyExtent()
	if !e.IsEmpty() {
		t.Fatal("empty extent is not empty")
	}
	a := Extent{Min: 1, Max: 3}
	if got := e.Fold(a); got != a {
		t.Errorf("empty.Fold(%v) = %v", a, got)
	}
	if got := a.Fold(e); got != a {
		t.Errorf("%v.Fold(empty) = %v", a, got)
	}
	b := Extent{Min: -2, Max: 2}
	want := Extent{Min: -2, Max: 3}
	if got := a.Fold(b); got != want {
		t.Errorf("Fold = %v, want %v", got, want)
	}
	if got := ExtentOf([]float64{2, math.NaN(), -1, math.Inf(1)}); got != (Extent{-1, 2}) {
		t.Errorf("ExtentOf ignores NaN and Inf: got %v", got)
	}
}

// TestAutoRangeOrderIndependent checks that the viewport does not depend
// on the order in which the series are added.
func TestAutoRangeOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	type series struct{ xs, ys []float64 }
	var all []series
	for range 6 {
		n := 1 + rng.IntN(8)
		s := series{xs: make([]float64, n), ys: make([]float64, n)}
		for i := range n {
			s.xs[i] = rng.NormFloat64() * 10
			s.ys[i] = rng.NormFloat64() * 100
		}
		all = append(all, s)
	}

	ref := New()
	for _, s := range all {
		if err := ref.Plot(s.xs, s.ys, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	refX, refY, _ := ref.Extents()

	for trial := range 20 {
		perm := rng.Perm(len(all))
		f := New()
		for _, i := range perm {
			if err := f.Plot(all[i].xs, all[i].ys, "", ""); err != nil {
				t.Fatal(err)
			}
		}
		x, y, _ := f.Extents()
		if x != refX || y != refY {
			t.Errorf("trial %d: extents %v %v, want %v %v", trial, x, y, refX, refY)
		}
	}
}

func TestExplicitRangesSticky(t *testing.T) {
	f := New()
	if err := f.Plot([]float64{0, 1}, []float64{0, 1}, "", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.Ranges(-5, 5, -1, 1); err != nil {
		t.Fatal(err)
	}
	if err := f.Plot([]float64{-100, 100}, []float64{7, 8}, "", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.Plot3([]float64{1}, []float64{2}, []float64{30}, "", ""); err != nil {
		t.Fatal(err)
	}
	x, y, z := f.Extents()
	if x != (Extent{-5, 5}) || y != (Extent{-1, 1}) {
		t.Errorf("extents changed after Ranges: %v %v", x, y)
	}
	if !z.IsEmpty() {
		t.Errorf("z extent %v, want empty", z)
	}
	if f.AutoRanges() {
		t.Error("auto-ranging re-enabled")
	}
	if f.Len() != 3 {
		t.Errorf("queue length %d, want 3", f.Len())
	}
}

func TestRangesValidation(t *testing.T) {
	cases := [][4]float64{
		{5, 1, 0, 10},
		{0, 1, 3, 2},
	}
	for _, c := range cases {
		f := New()
		err := f.Ranges(c[0], c[1], c[2], c[3])
		if !errors.Is(err, ErrOrderingViolation) {
			t.Errorf("Ranges%v: got %v, want ErrOrderingViolation", c, err)
		}
		if !f.AutoRanges() {
			t.Errorf("Ranges%v: auto-ranging switched off", c)
		}
		x, y, _ := f.Extents()
		if !x.IsEmpty() || !y.IsEmpty() {
			t.Errorf("Ranges%v: extents modified", c)
		}
	}

	f := New()
	if err := f.Ranges(2, 2, -1, -1); err != nil {
		t.Errorf("degenerate ranges rejected: %v", err)
	}
}

func TestLengthValidation(t *testing.T) {
	f := New()
	err := f.Plot([]float64{1, 2, 3}, []float64{1, 2}, "", "")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Plot: got %v, want ErrLengthMismatch", err)
	}
	err = f.Plot3([]float64{1, 2}, []float64{1, 2}, []float64{1}, "", "")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Plot3: got %v, want ErrLengthMismatch", err)
	}
	if f.Len() != 0 {
		t.Errorf("queue length %d after failed calls", f.Len())
	}
	if f.Is3D() {
		t.Error("failed Plot3 switched to 3D")
	}
	x, _, _ := f.Extents()
	if !x.IsEmpty() {
		t.Errorf("failed calls changed the extents: %v", x)
	}
}

func TestPlotCopiesData(t *testing.T) {
	f := New()
	xs := []float64{1, 2}
	ys := []float64{3, 4}
	if err := f.Plot(xs, ys, "", ""); err != nil {
		t.Fatal(err)
	}
	xs[0] = 100
	s := f.queue[0].(series2D)
	if s.xs[0] != 1 {
		t.Error("queued series aliases caller data")
	}
}

func TestPlotY(t *testing.T) {
	f := New()
	if err := f.PlotY([]float64{5, -1, 2, 7}, "r", "data"); err != nil {
		t.Fatal(err)
	}
	x, y, _ := f.Extents()
	if x != (Extent{1, 4}) || y != (Extent{-1, 7}) {
		t.Errorf("extents %v %v", x, y)
	}
	s := f.queue[0].(series2D)
	for i, v := range s.xs {
		if v != float64(i+1) {
			t.Errorf("xs[%d] = %g", i, v)
		}
	}
}

func TestPlot3Folds(t *testing.T) {
	f := New()
	if err := f.Plot([]float64{0, 10}, []float64{0, 1}, "", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.Plot3([]float64{-1, 2}, []float64{3, 4}, []float64{-7, 8}, "", ""); err != nil {
		t.Fatal(err)
	}
	x, y, z := f.Extents()
	if x != (Extent{-1, 10}) || y != (Extent{0, 4}) || z != (Extent{-7, 8}) {
		t.Errorf("extents %v %v %v", x, y, z)
	}
	if !f.Is3D() {
		t.Error("not 3D after Plot3")
	}
}

func TestFPlotDoesNotFold(t *testing.T) {
	f := New()
	f.FPlot("x^2", "r", "")
	x, y, _ := f.Extents()
	if !x.IsEmpty() || !y.IsEmpty() {
		t.Errorf("FPlot changed extents: %v %v", x, y)
	}
	if f.Len() != 1 {
		t.Errorf("queue length %d", f.Len())
	}
}

func TestSetLogMonotonic(t *testing.T) {
	f := New()
	f.SetLog(false, false, false)
	if f.xFunc != "" || f.yFunc != "" || f.zFunc != "" {
		t.Fatal("SetLog(false, false, false) is not a no-op")
	}
	f.SetLog(true, false, false)
	f.SetLog(false, true, false)
	f.SetLog(false, false, false)
	if f.xFunc != "lg(x)" || f.yFunc != "lg(y)" || f.zFunc != "" {
		t.Errorf("transforms %q %q %q", f.xFunc, f.yFunc, f.zFunc)
	}
	f.SetLog(false, false, true)
	if f.zFunc != "lg(z)" || f.xFunc != "lg(x)" {
		t.Errorf("transforms %q %q %q", f.xFunc, f.yFunc, f.zFunc)
	}
}

func TestGrid(t *testing.T) {
	f := New()
	f.Grid(true, "x", "r")
	f.GridDefault(false)
	if f.showGrid || f.gridStyle != "xy" || f.gridColor != "{h7}" {
		t.Errorf("GridDefault kept old values: %t %q %q", f.showGrid, f.gridStyle, f.gridColor)
	}
}

func TestLegendWarning(t *testing.T) {
	cases := []struct {
		x, y float64
		warn bool
	}{
		{1, 1, false},
		{-2, 2, false},
		{2.5, 0, true},
		{0, -3, true},
	}
	for _, tc := range cases {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		f := New(WithLogger(logger))
		f.Legend(tc.x, tc.y)
		got := strings.Contains(buf.String(), "level=WARN")
		if got != tc.warn {
			t.Errorf("Legend(%g, %g): warning %t, want %t", tc.x, tc.y, got, tc.warn)
		}
		if !f.showLegend || f.legendX != tc.x || f.legendY != tc.y {
			t.Errorf("Legend(%g, %g) not stored", tc.x, tc.y)
		}
	}
}

func TestFloat64s(t *testing.T) {
	got := Float64s([]int16{-3, 0, 7})
	want := []float64{-3, 0, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Float64s: got %v, want %v", got, want)
			break
		}
	}
	if got := Float64s([]float32{0.5}); got[0] != 0.5 {
		t.Errorf("Float64s(float32): %v", got)
	}
	if got := Seq(0); len(got) != 0 {
		t.Errorf("Seq(0) = %v", got)
	}
}
