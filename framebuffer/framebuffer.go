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

// Package framebuffer defines the pixel storage shared by frame sources,
// filters and the compositor.
//
// A Buffer is a width by height array of four byte pixels. The byte order of
// each pixel is fixed: blue, green, red, alpha. The layout matches a little
// endian ARGB8888 display texture so a composed surface can be presented
// without conversion.
//
// Buffer implements draw.Image so that the font and image/draw packages can
// render directly into it.
package framebuffer

import (
	"image"
	"image/color"
)

// BytesPerPixel is the size of one pixel in a Buffer.
const BytesPerPixel = 4

// offsets of each channel in a pixel.
const (
	B = 0
	G = 1
	R = 2
	A = 3
)

// Buffer is a fixed size array of BGRA pixels.
type Buffer struct {
	Width  int
	Height int

	// Pix holds the pixel data in row major order. The length is always
	// Width*Height*BytesPerPixel
	Pix []byte
}

// NewBuffer allocates a buffer of the specified size. All pixels are black
// and opaque.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	buf := &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
	buf.Fill(color.RGBA{A: 0xff})
	return buf
}

// Stride is the number of bytes in one row of pixels.
func (buf *Buffer) Stride() int {
	return buf.Width * BytesPerPixel
}

// Offset returns the index into Pix of the pixel at x, y. The coordinates
// are not checked.
func (buf *Buffer) Offset(x, y int) int {
	return (y*buf.Width + x) * BytesPerPixel
}

// SameSize returns true if both buffers have the same dimensions.
func (buf *Buffer) SameSize(o *Buffer) bool {
	return buf.Width == o.Width && buf.Height == o.Height
}

// ColorModel implements the image.Image interface.
func (buf *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (buf *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, buf.Width, buf.Height)
}

// At implements the image.Image interface.
func (buf *Buffer) At(x, y int) color.Color {
	if !(image.Pt(x, y).In(buf.Bounds())) {
		return color.RGBA{}
	}
	return buf.RGBAAt(x, y)
}

// RGBAAt returns the colour of the pixel at x, y.
func (buf *Buffer) RGBAAt(x, y int) color.RGBA {
	i := buf.Offset(x, y)
	p := buf.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return color.RGBA{R: p[R], G: p[G], B: p[B], A: p[A]}
}

// Set implements the draw.Image interface. Coordinates outside the buffer
// are ignored.
func (buf *Buffer) Set(x, y int, c color.Color) {
	if !(image.Pt(x, y).In(buf.Bounds())) {
		return
	}
	buf.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA sets the pixel at x, y. The coordinates are not checked.
func (buf *Buffer) SetRGBA(x, y int, c color.RGBA) {
	i := buf.Offset(x, y)
	p := buf.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	p[R] = c.R
	p[G] = c.G
	p[B] = c.B
	p[A] = c.A
}

// Fill every pixel with the colour.
func (buf *Buffer) Fill(c color.RGBA) {
	for i := 0; i < len(buf.Pix); i += BytesPerPixel {
		buf.Pix[i+R] = c.R
		buf.Pix[i+G] = c.G
		buf.Pix[i+B] = c.B
		buf.Pix[i+A] = c.A
	}
}

// FillRect fills the rectangle with the colour. The rectangle is clipped to
// the buffer.
func (buf *Buffer) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(buf.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.SetRGBA(x, y, c)
		}
	}
}

// CopyFrom copies the pixels of src. Buffers must be the same size, the
// return value is false if they are not and nothing is copied.
func (buf *Buffer) CopyFrom(src *Buffer) bool {
	if !buf.SameSize(src) {
		return false
	}
	copy(buf.Pix, src.Pix)
	return true
}

// Blit copies all of src into buf with the top-left corner of src at x, y.
// Pixels falling outside buf are clipped.
func (buf *Buffer) Blit(src *Buffer, x, y int) {
	dst := image.Rect(x, y, x+src.Width, y+src.Height).Intersect(buf.Bounds())
	if dst.Empty() {
		return
	}
	n := dst.Dx() * BytesPerPixel
	for row := dst.Min.Y; row < dst.Max.Y; row++ {
		s := src.Offset(dst.Min.X-x, row-y)
		d := buf.Offset(dst.Min.X, row)
		copy(buf.Pix[d:d+n], src.Pix[s:s+n])
	}
}

// Clone returns a copy of the buffer.
func (buf *Buffer) Clone() *Buffer {
	c := &Buffer{
		Width:  buf.Width,
		Height: buf.Height,
		Pix:    make([]byte, len(buf.Pix)),
	}
	copy(c.Pix, buf.Pix)
	return c
}

// Luma returns the brightness of the pixel at byte offset i using the NTSC
// weights.
func (buf *Buffer) Luma(i int) float64 {
	return 0.2989*float64(buf.Pix[i+R]) + 0.5866*float64(buf.Pix[i+G]) + 0.1145*float64(buf.Pix[i+B])
}
