// This file is part of framegrid.
//
// framegrid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// framegrid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with framegrid.  If not, see <https://www.gnu.org/licenses/>.

package overlay

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
)

// Text draws strings onto a frame buffer. The top-left corner of the text is
// placed at the anchor, which is the top-left corner of the buffer unless
// changed with SetAnchor().
type Text struct {
	face   font.Face
	anchor image.Point

	// sfnt font and buffer are used to check that a glyph exists. nil when
	// using the built-in face
	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// NewBasicText returns a Text instance using the built-in bitmap face.
func NewBasicText() *Text {
	return &Text{
		face: basicfont.Face7x13,
	}
}

// GoFont can be passed to LoadText() in place of a path to select the Go
// Regular font, which is compiled into the program.
const GoFont = "go"

// LoadText loads a TrueType or OpenType font and returns a Text instance that
// renders it at the specified size (in pixels).
func LoadText(path string, size float64) (*Text, error) {
	if path == GoFont {
		return parseText("go regular", goregular.TTF, size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("overlay: %w", err))
	}

	return parseText(path, data, size)
}

func parseText(name string, data []byte, size float64) (*Text, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("overlay: %s: %w", name, err))
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("overlay: %s: %w", name, err))
	}

	return &Text{
		face: face,
		sfnt: f,
	}, nil
}

// SetAnchor changes the position of the top-left corner of drawn text.
func (txt *Text) SetAnchor(x, y int) {
	txt.anchor = image.Pt(x, y)
}

// Close releases the font face.
func (txt *Text) Close() error {
	return txt.face.Close()
}

// Height returns the height of one line of text.
func (txt *Text) Height() int {
	return txt.face.Metrics().Height.Ceil()
}

// Measure returns the width of the string in pixels.
func (txt *Text) Measure(s string) int {
	return font.MeasureString(txt.face, s).Ceil()
}

// renderable returns false if the face has no glyph for the rune
func (txt *Text) renderable(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}

	if txt.sfnt != nil {
		idx, err := txt.sfnt.GlyphIndex(&txt.buf, r)
		return err == nil && idx != 0
	}

	// the basic face substitutes missing glyphs so the ranges must be
	// checked directly
	if bf, ok := txt.face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if r >= rng.Low && r < rng.High {
				return true
			}
		}
		return false
	}

	_, ok := txt.face.GlyphAdvance(r)
	return ok
}

func (txt *Text) check(s string) error {
	for _, r := range s {
		if !txt.renderable(r) {
			return curated.Errorf(curated.ArgumentError, fmt.Sprintf("overlay: cannot render %q", r))
		}
	}
	return nil
}

// Draw the string in the colour. Returns an ArgumentError if the string
// contains a character that cannot be rendered, in which case nothing is
// drawn.
func (txt *Text) Draw(target *framebuffer.Buffer, s string, col color.RGBA) error {
	if err := txt.check(s); err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  target,
		Src:  image.NewUniform(col),
		Face: txt.face,
		Dot:  fixed.P(txt.anchor.X, txt.anchor.Y+txt.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	return nil
}

// DrawShaded is like Draw but fills the area behind the text with the
// background colour first.
func (txt *Text) DrawShaded(target *framebuffer.Buffer, s string, col color.RGBA, bg color.RGBA) error {
	if err := txt.check(s); err != nil {
		return err
	}

	r := image.Rect(0, 0, txt.Measure(s), txt.Height()).Add(txt.anchor)
	target.FillRect(r, bg)

	return txt.Draw(target, s, col)
}
