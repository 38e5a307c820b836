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

// Package ppm reads and writes the binary (P6) variant of the portable pixmap
// format. Only the subset written by framegrid is accepted when reading:
//
//	P6 <width> <height> 255 <pixel data>
//
// Header fields are separated by whitespace and a single whitespace byte
// follows the maximum value. Comments are not allowed and the maximum value
// must be 255. Pixel data is width*height samples of three bytes in red,
// green, blue order.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
)

// ParseError is the pattern for all errors returned by Decode().
const ParseError = "ppm: %v"

const magic = "P6"

const maxValue = 255

// Decode a P6 image into a new framebuffer.Buffer. Images with more than
// maxPixels pixels are rejected. A maxPixels value of zero or less means
// there is no limit.
func Decode(r io.Reader, maxPixels int) (*framebuffer.Buffer, error) {
	br := bufio.NewReader(r)

	var m [2]byte
	if _, err := io.ReadFull(br, m[:]); err != nil || string(m[:]) != magic {
		return nil, curated.Errorf(ParseError, "not a P6 file")
	}

	width, err := field(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := field(br, "height")
	if err != nil {
		return nil, err
	}
	mx, err := field(br, "maximum value")
	if err != nil {
		return nil, err
	}
	if mx != maxValue {
		return nil, curated.Errorf(ParseError, fmt.Sprintf("unsupported maximum value (%d)", mx))
	}

	// exactly one whitespace byte separates the header from the pixel data
	if b, err := br.ReadByte(); err != nil || !isSpace(b) {
		return nil, curated.Errorf(ParseError, "malformed header")
	}

	if width == 0 || height == 0 {
		return nil, curated.Errorf(ParseError, fmt.Sprintf("empty image (%dx%d)", width, height))
	}
	if maxPixels > 0 && width*height > maxPixels {
		return nil, curated.Errorf(ParseError, fmt.Sprintf("image too large (%dx%d)", width, height))
	}

	buf := framebuffer.NewBuffer(width, height)

	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, curated.Errorf(ParseError, "truncated pixel data")
		}
		o := buf.Offset(0, y)
		for x := 0; x < width; x++ {
			p := buf.Pix[o : o+framebuffer.BytesPerPixel]
			p[framebuffer.R] = row[x*3]
			p[framebuffer.G] = row[x*3+1]
			p[framebuffer.B] = row[x*3+2]
			p[framebuffer.A] = 0xff
			o += framebuffer.BytesPerPixel
		}
	}

	return buf, nil
}

// field skips leading whitespace and reads a decimal number. the number
// must be terminated by whitespace, which is left unread
func field(br *bufio.Reader, name string) (int, error) {
	// whitespace is required between fields
	b, err := br.ReadByte()
	if err != nil || !isSpace(b) {
		return 0, curated.Errorf(ParseError, fmt.Sprintf("malformed %s", name))
	}
	for isSpace(b) {
		b, err = br.ReadByte()
		if err != nil {
			return 0, curated.Errorf(ParseError, fmt.Sprintf("missing %s", name))
		}
	}

	var n int
	var digits int
	for b >= '0' && b <= '9' {
		n = n*10 + int(b-'0')
		digits++
		if n > 1<<24 {
			return 0, curated.Errorf(ParseError, fmt.Sprintf("%s out of range", name))
		}
		b, err = br.ReadByte()
		if err != nil {
			return 0, curated.Errorf(ParseError, fmt.Sprintf("malformed %s", name))
		}
	}
	if digits == 0 || !isSpace(b) {
		return 0, curated.Errorf(ParseError, fmt.Sprintf("malformed %s", name))
	}

	// the terminating whitespace belongs to the next field
	_ = br.UnreadByte()

	return n, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

// Encode writes the buffer as a P6 image. The alpha channel is discarded.
func Encode(w io.Writer, buf *framebuffer.Buffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", magic, buf.Width, buf.Height, maxValue); err != nil {
		return err
	}

	row := make([]byte, buf.Width*3)
	for y := 0; y < buf.Height; y++ {
		o := buf.Offset(0, y)
		for x := 0; x < buf.Width; x++ {
			row[x*3] = buf.Pix[o+framebuffer.R]
			row[x*3+1] = buf.Pix[o+framebuffer.G]
			row[x*3+2] = buf.Pix[o+framebuffer.B]
			o += framebuffer.BytesPerPixel
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}
