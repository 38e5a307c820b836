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
	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/framebuffer"
)

// EdgeThreshold is the brightness difference between horizontal neighbours
// that is considered to be an edge.
const EdgeThreshold = 15

// Edge marks vertical edges in white. Everything else is black.
//
// Pixels are treated as one long line so the first and last pixels of each
// row are compared with pixels on the neighbouring rows. The first and last
// pixels of the buffer are always black.
func Edge(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	n := len(src.Pix) / bpp
	for i := 0; i < n; i++ {
		d := dst.Pix[i*bpp : (i+1)*bpp]
		var v byte
		if i > 0 && i < n-1 {
			diff := luma(src.Pix[(i+1)*bpp:]) - luma(src.Pix[(i-1)*bpp:])
			if diff < 0 {
				diff = -diff
			}
			if diff/2 > EdgeThreshold {
				v = 0xff
			}
		}
		d[r], d[g], d[b], d[a] = v, v, v, 0xff
	}
	return nil
}

// Blur is a horizontal blur over three pixels. The first and last pixels of
// the buffer are copied unchanged.
func Blur(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	n := len(src.Pix) / bpp
	for i := 0; i < n; i++ {
		d := dst.Pix[i*bpp : (i+1)*bpp]
		s := src.Pix[i*bpp : (i+1)*bpp]
		if i == 0 || i == n-1 {
			d[r], d[g], d[b], d[a] = s[r], s[g], s[b], 0xff
			continue
		}
		p := src.Pix[(i-1)*bpp : (i+2)*bpp]
		for _, c := range []int{r, g, b} {
			d[c] = byte((uint16(p[c]) + uint16(p[bpp+c]) + uint16(p[2*bpp+c])) / 3)
		}
		d[a] = 0xff
	}
	return nil
}

// LinearContrast stretches the colour channels so that the darkest value in
// the frame becomes zero and the brightest becomes 255.
func LinearContrast(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	lo, hi := byte(0xff), byte(0)
	for i := 0; i < len(src.Pix); i += bpp {
		for _, c := range []int{r, g, b} {
			lo = min(lo, src.Pix[i+c])
			hi = max(hi, src.Pix[i+c])
		}
	}

	// flat image
	if hi <= lo {
		perPixel(src, dst, func(s, d []byte) {
			d[r], d[g], d[b] = s[r], s[g], s[b]
		})
		return nil
	}

	rng := int(hi - lo)
	perPixel(src, dst, func(s, d []byte) {
		for _, c := range []int{r, g, b} {
			d[c] = byte((int(s[c]-lo)*255 + rng/2) / rng)
		}
	})

	return nil
}
