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

package filters

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/overlay"
)

// RGBHist draws a histogram of the red, green and blue channels, each
// normalised by the brightness of the pixel.
func RGBHist(src, dst *framebuffer.Buffer, state *filtergraph.State) error {
	if state.Value == nil {
		h, err := overlay.NewHistogram(3)
		if err != nil {
			return err
		}
		state.Value = h
	}
	h := state.Value.(*overlay.Histogram)

	h.Clear()
	for i := 0; i < len(src.Pix); i += bpp {
		p := src.Pix[i : i+bpp]
		v := luma(p)

		// black pixels carry no colour information
		if v <= 0 {
			continue
		}
		_ = h.Accumulate(0, float64(p[r])/v)
		_ = h.Accumulate(1, float64(p[g])/v)
		_ = h.Accumulate(2, float64(p[b])/v)
	}

	dst.Fill(color.RGBA{A: 0xff})
	return h.Draw(dst, 0)
}

// counter is the state of the FrameCounter transform.
type counter struct {
	frames int
	txt    *overlay.Text
}

// Close implements the io.Closer interface.
func (c *counter) Close() error {
	return c.txt.Close()
}

// FrameCounter returns a transform that copies the source and draws the
// number of frames it has seen. newText is called on the first frame to
// create the text renderer.
func FrameCounter(newText func() (*overlay.Text, error)) filtergraph.Transform {
	return func(src, dst *framebuffer.Buffer, state *filtergraph.State) error {
		if state.Value == nil {
			txt, err := newText()
			if err != nil {
				return err
			}
			state.Value = &counter{txt: txt}
		}
		c := state.Value.(*counter)

		copy(dst.Pix, src.Pix)
		err := c.txt.Draw(dst, fmt.Sprintf("%d", c.frames), color.RGBA{R: 0xff, G: 0xff, A: 0xff})
		if err != nil {
			return err
		}
		c.frames++

		return nil
	}
}

// ColorizeThreshold is the brightness at which a pixel is considered to be
// bright by the Colorize transform.
const ColorizeThreshold = 128

// the number of colours in a Colorize palette.
const paletteSize = 5

// Colorize returns a transform that paints each row with a palette of random
// colours, moving to the next colour whenever the source changes between
// dark and bright. A seed of zero seeds the palette from the clock.
func Colorize(seed int64) filtergraph.Transform {
	return func(src, dst *framebuffer.Buffer, state *filtergraph.State) error {
		if state.Value == nil {
			s := seed
			if s == 0 {
				s = time.Now().UnixNano()
			}
			rnd := rand.New(rand.NewSource(s))
			var palette [paletteSize]color.RGBA
			for i := range palette {
				palette[i] = color.RGBA{
					R: byte(rnd.Intn(255)),
					G: byte(rnd.Intn(255)),
					B: byte(rnd.Intn(255)),
					A: 0xff,
				}
			}
			state.Value = &palette
		}
		palette := state.Value.(*[paletteSize]color.RGBA)

		var last bool
		for y := 0; y < src.Height; y++ {
			var idx int
			for x := 0; x < src.Width; x++ {
				bright := luma(src.Pix[src.Offset(x, y):]) >= ColorizeThreshold
				if bright != last {
					idx = (idx + 1) % paletteSize
				}
				dst.SetRGBA(x, y, palette[idx])
				last = bright
			}
		}

		return nil
	}
}
