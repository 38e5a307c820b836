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

package filters_test

import (
	"image/color"
	"testing"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/filters"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/test"
)

// single pixel source with the colour
func pixel(c color.RGBA) *framebuffer.Buffer {
	buf := framebuffer.NewBuffer(1, 1)
	buf.SetRGBA(0, 0, c)
	return buf
}

func apply(t *testing.T, f filtergraph.Transform, src *framebuffer.Buffer) *framebuffer.Buffer {
	t.Helper()
	dst := framebuffer.NewBuffer(src.Width, src.Height)
	dst.Fill(color.RGBA{R: 1, G: 2, B: 3, A: 4})
	test.DemandSuccess(t, f(src, dst, &filtergraph.State{}))
	return dst
}

func TestChannels(t *testing.T) {
	src := pixel(color.RGBA{R: 100, G: 150, B: 200, A: 0xff})

	cases := []struct {
		name   string
		expect color.RGBA
	}{
		{"copy", color.RGBA{R: 100, G: 150, B: 200, A: 0xff}},
		{"red", color.RGBA{R: 100, A: 0xff}},
		{"green", color.RGBA{G: 150, A: 0xff}},
		{"blue", color.RGBA{B: 200, A: 0xff}},
		{"replace_blue", color.RGBA{R: 100, G: 150, B: 125, A: 0xff}},
		{"invert", color.RGBA{R: 155, G: 105, B: 55, A: 0xff}},
		{"cyan", color.RGBA{R: 155, G: 0xff, B: 0xff, A: 0xff}},
		{"magenta", color.RGBA{R: 0xff, G: 105, B: 0xff, A: 0xff}},
		{"yellow", color.RGBA{R: 0xff, G: 0xff, B: 55, A: 0xff}},
		{"gray", color.RGBA{R: 140, G: 140, B: 140, A: 0xff}},
	}

	for _, c := range cases {
		f, err := filters.Lookup(c.name, filters.Options{})
		test.DemandSuccess(t, err, c.name)
		dst := apply(t, f, src)
		test.ExpectEquality(t, dst.RGBAAt(0, 0), c.expect, c.name)
	}
}

func TestInvertTwice(t *testing.T) {
	src := framebuffer.NewBuffer(3, 3)
	for i := range src.Pix {
		src.Pix[i] = byte(i * 13)
	}
	for i := framebuffer.A; i < len(src.Pix); i += framebuffer.BytesPerPixel {
		src.Pix[i] = 0xff
	}

	dst := apply(t, filters.Invert, apply(t, filters.Invert, src))
	test.ExpectEquality(t, string(dst.Pix), string(src.Pix))
}

func TestEdge(t *testing.T) {
	src := framebuffer.NewBuffer(6, 1)
	for x := 3; x < 6; x++ {
		src.SetRGBA(x, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}

	dst := apply(t, filters.Edge, src)
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}

	// the step between pixel 2 and pixel 3 is seen by both pixels
	test.ExpectEquality(t, dst.RGBAAt(0, 0), black)
	test.ExpectEquality(t, dst.RGBAAt(1, 0), black)
	test.ExpectEquality(t, dst.RGBAAt(2, 0), white)
	test.ExpectEquality(t, dst.RGBAAt(3, 0), white)
	test.ExpectEquality(t, dst.RGBAAt(4, 0), black)
	test.ExpectEquality(t, dst.RGBAAt(5, 0), black)
}

func TestBlur(t *testing.T) {
	src := framebuffer.NewBuffer(3, 1)
	src.SetRGBA(0, 0, color.RGBA{R: 30, A: 0xff})
	src.SetRGBA(1, 0, color.RGBA{R: 60, A: 0xff})
	src.SetRGBA(2, 0, color.RGBA{R: 90, A: 0xff})

	dst := apply(t, filters.Blur, src)
	test.ExpectEquality(t, dst.RGBAAt(0, 0), color.RGBA{R: 30, A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(1, 0), color.RGBA{R: 60, A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(2, 0), color.RGBA{R: 90, A: 0xff})
}

func TestLinearContrast(t *testing.T) {
	src := framebuffer.NewBuffer(2, 1)
	src.SetRGBA(0, 0, color.RGBA{R: 50, G: 50, B: 50, A: 0xff})
	src.SetRGBA(1, 0, color.RGBA{R: 100, G: 100, B: 150, A: 0xff})

	dst := apply(t, filters.LinearContrast, src)
	test.ExpectEquality(t, dst.RGBAAt(0, 0), color.RGBA{A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(1, 0), color.RGBA{R: 128, G: 128, B: 0xff, A: 0xff})

	// flat images are copied
	flat := pixel(color.RGBA{R: 7, G: 7, B: 7, A: 0xff})
	dst = apply(t, filters.LinearContrast, flat)
	test.ExpectEquality(t, dst.RGBAAt(0, 0), color.RGBA{R: 7, G: 7, B: 7, A: 0xff})
}

func TestRGBHist(t *testing.T) {
	src := framebuffer.NewBuffer(30, 10)
	src.Fill(color.RGBA{R: 0xff, A: 0xff})

	var state filtergraph.State
	dst := framebuffer.NewBuffer(30, 10)
	test.DemandSuccess(t, filters.RGBHist(src, dst, &state))
	test.ExpectInequality(t, state.Value, nil)

	// only the red bar is drawn and it is full height
	green := color.RGBA{G: 0xff, A: 0xff}
	test.ExpectEquality(t, dst.RGBAAt(0, 0), green)
	test.ExpectEquality(t, dst.RGBAAt(15, 9), color.RGBA{A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(25, 9), color.RGBA{A: 0xff})
}

func TestFrameCounter(t *testing.T) {
	f, err := filters.Lookup("frame_counter", filters.Options{})
	test.DemandSuccess(t, err)

	src := framebuffer.NewBuffer(40, 20)
	dst := framebuffer.NewBuffer(40, 20)

	var state filtergraph.State
	test.DemandSuccess(t, f(src, dst, &state))
	first := string(dst.Pix)
	test.ExpectInequality(t, first, string(src.Pix))

	// the counter has moved on so the output is different
	test.DemandSuccess(t, f(src, dst, &state))
	test.ExpectInequality(t, string(dst.Pix), first)

	// separate state is a separate counter
	var other filtergraph.State
	test.DemandSuccess(t, f(src, dst, &other))
	test.ExpectEquality(t, string(dst.Pix), first)
}

func TestColorize(t *testing.T) {
	f, err := filters.Lookup("colorize", filters.Options{Seed: 1})
	test.DemandSuccess(t, err)

	src := framebuffer.NewBuffer(4, 1)
	src.SetRGBA(2, 0, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	var state filtergraph.State
	dst := framebuffer.NewBuffer(4, 1)
	test.DemandSuccess(t, f(src, dst, &state))

	// brightness changes at pixel 2 and again at pixel 3
	test.ExpectEquality(t, dst.RGBAAt(0, 0), dst.RGBAAt(1, 0))
	test.ExpectInequality(t, dst.RGBAAt(1, 0), dst.RGBAAt(2, 0))
	test.ExpectInequality(t, dst.RGBAAt(2, 0), dst.RGBAAt(3, 0))

	// palette is kept between frames
	again := framebuffer.NewBuffer(4, 1)
	test.DemandSuccess(t, f(src, again, &state))
	test.ExpectEquality(t, string(again.Pix), string(dst.Pix))
}

func TestLookup(t *testing.T) {
	_, err := filters.Lookup("sharpen", filters.Options{})
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	_, err = filters.Lookup(" Invert ", filters.Options{})
	test.ExpectSuccess(t, err)

	for _, n := range filters.Names() {
		_, err := filters.Lookup(n, filters.Options{})
		test.ExpectSuccess(t, err, n)
	}
	test.ExpectEquality(t, len(filters.Names()), 16)
}
