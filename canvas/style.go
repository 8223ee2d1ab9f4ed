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
	"image/color"
	"strings"

	"github.com/aclements/go-gg/palette"
	"seehuhn.de/go/pdf/graphics"
)

// baseColors are the colours selected by the lower case colour letters.
// Upper case letters select darker shades.
var baseColors = map[byte]color.RGBA{
	'k': {0, 0, 0, 255},
	'r': {255, 0, 0, 255},
	'g': {0, 160, 0, 255},
	'b': {0, 0, 255, 255},
	'c': {0, 200, 200, 255},
	'm': {200, 0, 200, 255},
	'y': {220, 200, 0, 255},
	'w': {255, 255, 255, 255},
	'h': {128, 128, 128, 255},
}

// seriesColors is the colour cycle for series without an explicit colour.
const seriesColors = "bgrcmy"

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// shade returns the colour with letter code and brightness level 0-9.
// Level 5 is the plain colour, lower levels blend towards black and
// higher levels towards white.
func shade(code byte, level int) (color.NRGBA, bool) {
	base, ok := baseColors[code]
	if !ok {
		return color.NRGBA{}, false
	}
	g := palette.RGBGradient{
		Colors: []color.RGBA{{0, 0, 0, 255}, base, {255, 255, 255, 255}},
	}
	return color.NRGBAModel.Convert(g.Map(float64(level) / 10)).(color.NRGBA), true
}

// parseColor decodes a single colour specification: a colour letter, or
// "{cN}" with a colour letter c and a brightness digit N.
func parseColor(s string) (color.NRGBA, bool) {
	st, ok := parseStyle(s)
	return st.col, ok && st.hasColor
}

// style is a decoded style string.
type style struct {
	col      color.NRGBA
	hasColor bool

	noLine bool
	dash   []float64 // in multiples of the line width
	dots   bool

	marker byte
	filled bool

	width float64 // in multiples of the default line width
}

// dashPatterns maps the dash characters to their patterns, in multiples of
// the line width.
var dashPatterns = map[byte][]float64{
	'|': {8, 4},
	';': {4, 4},
	'=': {2, 2},
	':': {0, 3},
	'j': {6, 3, 0, 3},
}

// parseStyle decodes a style string in the following format.
//
//   - Colours: k r g b c m y w h (black, red, green, blue, cyan, magenta,
//     yellow, white, grey).  Upper case letters give darker colours,
//     and {cN} gives the colour c at brightness N (0-9).
//   - Lines: '-' solid, '|' long dashes, ';' dashes, '=' short dashes,
//     ':' dots, 'j' dash-dot and ' ' no line.
//   - Markers: o + x s d . * ^ v.  '#' fills the markers.
//   - A digit sets the line width.
//
// Unknown characters are ignored.  The boolean result is false if the
// string contains unknown characters.
func parseStyle(s string) (style, bool) {
	st := style{width: 1}
	ok := true
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return st, false
			}
			if col, good := parseShade(s[i+1 : i+end]); good {
				st.col, st.hasColor = col, true
			} else {
				ok = false
			}
			i += end
		case ch >= 'A' && ch <= 'Z' && baseColors[ch+'a'-'A'] != (color.RGBA{}):
			st.col, _ = shade(ch+'a'-'A', 3)
			st.hasColor = true
		case baseColors[ch] != (color.RGBA{}):
			st.col, _ = shade(ch, 5)
			st.hasColor = true
		case ch == '-':
			st.dash, st.dots = nil, false
		case ch == ' ':
			st.noLine = true
		case dashPatterns[ch] != nil:
			st.dash = dashPatterns[ch]
			st.dots = ch == ':' || ch == 'j'
		case strings.IndexByte("o+xsd.*^v", ch) >= 0:
			st.marker = ch
		case ch == '#':
			st.filled = true
		case ch >= '1' && ch <= '9':
			st.width = float64(ch - '0')
		default:
			ok = false
		}
	}
	return st, ok
}

// parseShade decodes the inside of a "{cN}" colour specification.
func parseShade(s string) (color.NRGBA, bool) {
	switch {
	case len(s) == 1:
		return shade(s[0], 5)
	case len(s) == 2 && s[1] >= '0' && s[1] <= '9':
		return shade(s[0], int(s[1]-'0'))
	default:
		return color.NRGBA{}, false
	}
}

// lineStyle is a resolved stroke style, in device pixels.
type lineStyle struct {
	col   color.NRGBA
	width float64
	dash  []float64
	cap   graphics.LineCapStyle
}

// resolve turns a parsed style into a line style.  Series without a colour
// take the next colour from the colour cycle.
func (c *Canvas) resolve(st *style) lineStyle {
	if !st.hasColor {
		st.col, _ = shade(seriesColors[c.nextColor%len(seriesColors)], 5)
		st.hasColor = true
		c.nextColor++
	}
	w := 1.5 * c.lineWidth() * st.width
	ls := lineStyle{col: st.col, width: w, cap: graphics.LineCapButt}
	if st.dash != nil {
		ls.dash = make([]float64, len(st.dash))
		for i, d := range st.dash {
			ls.dash[i] = d * w
		}
	}
	if st.dots {
		ls.cap = graphics.LineCapRound
	}
	return ls
}
