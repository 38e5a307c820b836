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

const (
	bpp = framebuffer.BytesPerPixel
	r   = framebuffer.R
	g   = framebuffer.G
	b   = framebuffer.B
	a   = framebuffer.A
)

// perPixel applies f to every pixel. f receives the source pixel and the
// destination pixel, both four bytes long
func perPixel(src, dst *framebuffer.Buffer, f func(s, d []byte)) {
	for i := 0; i < len(dst.Pix); i += bpp {
		d := dst.Pix[i : i+bpp : i+bpp]
		f(src.Pix[i:i+bpp:i+bpp], d)
		d[a] = 0xff
	}
}

// Copy the source unchanged.
func Copy(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	copy(dst.Pix, src.Pix)
	return nil
}

// Red keeps the red channel only.
func Red(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = s[r], 0, 0
	})
	return nil
}

// Green keeps the green channel only.
func Green(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = 0, s[g], 0
	})
	return nil
}

// Blue keeps the blue channel only.
func Blue(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = 0, 0, s[b]
	})
	return nil
}

// ReplaceBlue replaces the blue channel with the mean of the red and green
// channels. Hides the noise that is common in the blue channel of cheap
// cameras.
func ReplaceBlue(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = s[r], s[g], byte((uint16(s[r])+uint16(s[g]))/2)
	})
	return nil
}

// Invert complements every colour channel.
func Invert(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = ^s[r], ^s[g], ^s[b]
	})
	return nil
}

// Cyan is the inverse of the red channel.
func Cyan(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = ^s[r], 0xff, 0xff
	})
	return nil
}

// Magenta is the inverse of the green channel.
func Magenta(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = 0xff, ^s[g], 0xff
	})
	return nil
}

// Yellow is the inverse of the blue channel.
func Yellow(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		d[r], d[g], d[b] = 0xff, 0xff, ^s[b]
	})
	return nil
}

// luma of a single pixel using the NTSC weights
func luma(p []byte) float64 {
	return 0.2989*float64(p[r]) + 0.5866*float64(p[g]) + 0.1145*float64(p[b])
}

// Gray converts to greyscale.
func Gray(src, dst *framebuffer.Buffer, _ *filtergraph.State) error {
	perPixel(src, dst, func(s, d []byte) {
		v := byte(luma(s))
		d[r], d[g], d[b] = v, v, v
	})
	return nil
}
