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

// plotRequest is one queued plot.  The set of implementations is closed:
// functionPlot, series2D and series3D.  Requests are never modified after
// they have been queued, so rendering them twice gives the same result.
type plotRequest interface {
	render(c Canvas) error

	// isPlotRequest restricts the implementations to this package.
	isPlotRequest()
}

type functionPlot struct {
	expr   string
	style  string
	legend string
}

func (p functionPlot) render(c Canvas) error {
	return c.FPlot(p.expr, p.style, p.legend)
}

type series2D struct {
	xs, ys []float64
	style  string
	legend string
}

func (p series2D) render(c Canvas) error {
	return c.Plot(p.xs, p.ys, p.style, p.legend)
}

type series3D struct {
	xs, ys, zs []float64
	style      string
	legend     string
}

func (p series3D) render(c Canvas) error {
	return c.Plot3(p.xs, p.ys, p.zs, p.style, p.legend)
}

func (functionPlot) isPlotRequest() {}
func (series2D) isPlotRequest()     {}
func (series3D) isPlotRequest()     {}
