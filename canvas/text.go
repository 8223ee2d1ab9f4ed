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
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrUnknownFont is returned by [Canvas.LoadFont] for unknown font names.
var ErrUnknownFont = errors.New("canvas: unknown font")

var fontData = map[string][]byte{
	"heros":   goregular.TTF,
	"regular": goregular.TTF,
	"mono":    gomono.TTF,
	"bold":    gobold.TTF,
	"italic":  goitalic.TTF,
}

var (
	fontMu    sync.Mutex
	fontCache = map[string]*sfnt.Font{}
)

// capHeight is the approximate height of capital letters, relative to
// the font size.
const capHeight = 0.72

// face is a font together with the scratch buffer used to load glyphs.
type face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

func loadFace(name string) (*face, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := fontCache[name]; ok {
		return &face{font: f}, nil
	}
	data, ok := fontData[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: font %q: %w", name, err)
	}
	fontCache[name] = f
	return &face{font: f}, nil
}

func (f *face) glyph(r rune) sfnt.GlyphIndex {
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gi == 0 {
		gi, _ = f.font.GlyphIndex(&f.buf, '?')
	}
	return gi
}

// width returns the advance width of text at size px.
func (f *face) width(text string, px float64) float64 {
	ppem := fixed.Int26_6(px * 64)
	var w fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range []rune(text) {
		gi := f.glyph(r)
		if i > 0 {
			if k, err := f.font.Kern(&f.buf, prev, gi, ppem, font.HintingNone); err == nil {
				w += k
			}
		}
		adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
		if err == nil {
			w += adv
		}
		prev = gi
	}
	return float64(w) / 64
}

// outline appends the glyph outlines of text to p.  The glyph
// coordinates, relative to the start of the baseline, are passed through
// place.
func (f *face) outline(p *path.Data, text string, px float64, place func(x, y float64) vec.Vec2) {
	ppem := fixed.Int26_6(px * 64)
	pt := func(q fixed.Point26_6, x float64) vec.Vec2 {
		return place(x+float64(q.X)/64, float64(q.Y)/64)
	}

	var x float64
	var prev sfnt.GlyphIndex
	for i, r := range []rune(text) {
		gi := f.glyph(r)
		if i > 0 {
			if k, err := f.font.Kern(&f.buf, prev, gi, ppem, font.HintingNone); err == nil {
				x += float64(k) / 64
			}
		}
		segs, err := f.font.LoadGlyph(&f.buf, gi, ppem, nil)
		if err == nil {
			started := false
			for _, s := range segs {
				switch s.Op {
				case sfnt.SegmentOpMoveTo:
					if started {
						p.Close()
					}
					p.MoveTo(pt(s.Args[0], x))
					started = true
				case sfnt.SegmentOpLineTo:
					p.LineTo(pt(s.Args[0], x))
				case sfnt.SegmentOpQuadTo:
					p.QuadTo(pt(s.Args[0], x), pt(s.Args[1], x))
				case sfnt.SegmentOpCubeTo:
					p.CubeTo(pt(s.Args[0], x), pt(s.Args[1], x), pt(s.Args[2], x))
				}
			}
			if started {
				p.Close()
			}
		}
		if adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone); err == nil {
			x += float64(adv) / 64
		}
		prev = gi
	}
}

// text draws a line of text at the current font size.  hAlign and vAlign
// select the reference point: 0 for the left or top edge, 0.5 for the
// centre and 1 for the right or bottom edge.  Vertical text runs from
// bottom to top.
func (c *Canvas) text(s string, at vec.Vec2, hAlign, vAlign float64, vertical bool, col color.NRGBA) {
	if s == "" {
		return
	}
	px := c.fontSize
	ox := -hAlign * c.face.width(s, px)
	oy := capHeight * px * (1 - vAlign)
	place := func(x, y float64) vec.Vec2 {
		lx, ly := ox+x, oy+y
		if vertical {
			return vec.Vec2{X: at.X + ly, Y: at.Y - lx}
		}
		return vec.Vec2{X: at.X + lx, Y: at.Y + ly}
	}
	p := &path.Data{}
	c.face.outline(p, s, px, place)
	c.addFill(p, col)
}

// textWidth returns the width of s at the current font size.
func (c *Canvas) textWidth(s string) float64 {
	return c.face.width(s, c.fontSize)
}
