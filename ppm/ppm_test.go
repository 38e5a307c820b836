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

package ppm_test

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/ppm"
	"github.com/framegrid/framegrid/test"
)

func TestDecode(t *testing.T) {
	data := append([]byte("P6\n2 1 255\n"), 10, 20, 30, 40, 50, 60)

	buf, err := ppm.Decode(bytes.NewReader(data), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Width, 2)
	test.ExpectEquality(t, buf.Height, 1)
	test.ExpectEquality(t, buf.RGBAAt(0, 0), color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
	test.ExpectEquality(t, buf.RGBAAt(1, 0), color.RGBA{R: 40, G: 50, B: 60, A: 0xff})
}

func TestRoundTrip(t *testing.T) {
	src := framebuffer.NewBuffer(17, 5)
	for i := range src.Pix {
		if i%framebuffer.BytesPerPixel == framebuffer.A {
			continue
		}
		src.Pix[i] = byte(i * 7)
	}

	var b bytes.Buffer
	test.DemandSuccess(t, ppm.Encode(&b, src))
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "P6\n17 5 255\n"))

	dst, err := ppm.Decode(&b, 1024*768)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dst.Width, src.Width)
	test.ExpectEquality(t, dst.Height, src.Height)
	test.ExpectEquality(t, string(dst.Pix), string(src.Pix))
}

func TestMalformed(t *testing.T) {
	cases := []string{
		"",
		"P5\n2 1 255\n",
		"P6\n2 1 65535\n",
		"P6\n# comment\n2 1 255\n",
		"P6\n2x1 255\n",
		"P6\n2 1 255",
		"P6\n0 1 255\n",
		"P6\n2 1 255\n\x01\x02\x03",
		"P62 1 255\n",
	}

	for _, c := range cases {
		_, err := ppm.Decode(strings.NewReader(c), 0)
		if test.ExpectFailure(t, err, c) {
			test.ExpectSuccess(t, curated.Is(err, ppm.ParseError), c)
		}
	}
}

func TestMaxPixels(t *testing.T) {
	data := append([]byte("P6\n2 2 255\n"), make([]byte, 12)...)

	_, err := ppm.Decode(bytes.NewReader(data), 3)
	test.ExpectFailure(t, err)

	_, err = ppm.Decode(bytes.NewReader(data), 4)
	test.ExpectSuccess(t, err)
}
