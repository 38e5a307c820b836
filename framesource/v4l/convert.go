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

package v4l

import (
	"github.com/framegrid/framegrid/framebuffer"
)

// pixel format fourcc codes.
const (
	fmtBGR4 = uint32('B') | uint32('G')<<8 | uint32('R')<<16 | uint32('4')<<24
	fmtRGB3 = uint32('R') | uint32('G')<<8 | uint32('B')<<16 | uint32('3')<<24
	fmtRGBP = uint32('R') | uint32('G')<<8 | uint32('B')<<16 | uint32('P')<<24
)

// format describes how a device format is converted to BGRA.
type format struct {
	fourcc  uint32
	name    string
	depth   int
	convert func(dst []byte, src []byte, width int)
}

var formats = []format{
	{fourcc: fmtBGR4, name: "BGR4", depth: 32, convert: convertBGR4},
	{fourcc: fmtRGB3, name: "RGB3", depth: 24, convert: convertRGB3},
	{fourcc: fmtRGBP, name: "RGBP", depth: 16, convert: convertRGBP},
}

// formatForDepth returns the format used for the requested depth. Unknown
// depths use the 32 bit format.
func formatForDepth(depth int) format {
	for _, f := range formats {
		if f.depth == depth {
			return f
		}
	}
	return formats[0]
}

func formatForFourCC(fourcc uint32) (format, bool) {
	for _, f := range formats {
		if f.fourcc == fourcc {
			return f, true
		}
	}
	return format{}, false
}

// fourCCString returns the printable form of a fourcc code.
func fourCCString(fourcc uint32) string {
	return string([]byte{byte(fourcc), byte(fourcc >> 8), byte(fourcc >> 16), byte(fourcc >> 24)})
}

// the convert functions convert one row of width pixels

func convertBGR4(dst []byte, src []byte, width int) {
	for x := 0; x < width; x++ {
		d := dst[x*framebuffer.BytesPerPixel : (x+1)*framebuffer.BytesPerPixel]
		s := src[x*4 : (x+1)*4]
		d[framebuffer.B] = s[0]
		d[framebuffer.G] = s[1]
		d[framebuffer.R] = s[2]
		d[framebuffer.A] = 0xff
	}
}

func convertRGB3(dst []byte, src []byte, width int) {
	for x := 0; x < width; x++ {
		d := dst[x*framebuffer.BytesPerPixel : (x+1)*framebuffer.BytesPerPixel]
		s := src[x*3 : (x+1)*3]
		d[framebuffer.R] = s[0]
		d[framebuffer.G] = s[1]
		d[framebuffer.B] = s[2]
		d[framebuffer.A] = 0xff
	}
}

func convertRGBP(dst []byte, src []byte, width int) {
	for x := 0; x < width; x++ {
		d := dst[x*framebuffer.BytesPerPixel : (x+1)*framebuffer.BytesPerPixel]
		v := uint16(src[x*2]) | uint16(src[x*2+1])<<8
		r := byte(v>>11) & 0x1f
		g := byte(v>>5) & 0x3f
		b := byte(v) & 0x1f
		d[framebuffer.R] = r<<3 | r>>2
		d[framebuffer.G] = g<<2 | g>>4
		d[framebuffer.B] = b<<3 | b>>2
		d[framebuffer.A] = 0xff
	}
}

// convertFrame converts a complete frame from the device layout into buf.
// bytesPerLine may be larger than the minimum required by the format
func convertFrame(buf *framebuffer.Buffer, frame []byte, f format, bytesPerLine int) bool {
	need := buf.Width * f.depth / 8
	if bytesPerLine < need || len(frame) < bytesPerLine*(buf.Height-1)+need {
		return false
	}
	for y := 0; y < buf.Height; y++ {
		s := frame[y*bytesPerLine : y*bytesPerLine+need]
		d := buf.Pix[buf.Offset(0, y) : buf.Offset(0, y)+buf.Stride()]
		f.convert(d, s, buf.Width)
	}
	return true
}
