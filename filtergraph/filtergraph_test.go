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

package filtergraph_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/digest"
	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/filters"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/test"
)

// fill the root buffer with a pattern
func pattern(buf *framebuffer.Buffer) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			buf.SetRGBA(x, y, color.RGBA{R: byte(x), G: byte(y), B: byte(x ^ y), A: 0xff})
		}
	}
}

func TestNewGraph(t *testing.T) {
	_, err := filtergraph.NewGraph(0, 320, 240)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	_, err = filtergraph.NewGraph(4, 0, 240)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	g, err := filtergraph.NewGraph(4, 320, 240)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.NumSlots(), 4)
	test.ExpectEquality(t, g.Slot(0).Name, filtergraph.RootName)
	test.ExpectEquality(t, g.Root().Width, 320)
	test.ExpectEquality(t, g.Root().Height, 240)
	test.ExpectEquality(t, g.Slot(1), (*filtergraph.Slot)(nil))
	test.ExpectEquality(t, g.Slot(4), (*filtergraph.Slot)(nil))
}

func TestAddFilterBoundaries(t *testing.T) {
	g, err := filtergraph.NewGraph(4, 8, 8)
	test.DemandSuccess(t, err)

	// root slot cannot be filled
	err = g.AddFilter("invert", filters.Invert, 0, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// slot out of range
	err = g.AddFilter("invert", filters.Invert, 4, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// source must be strictly smaller
	err = g.AddFilter("invert", filters.Invert, 2, 2)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))
	err = g.AddFilter("invert", filters.Invert, 2, 3)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))
	err = g.AddFilter("invert", filters.Invert, 2, -1)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// source has no buffer
	err = g.AddFilter("invert", filters.Invert, 3, 1)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// no transform
	err = g.AddFilter("nothing", nil, 1, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// legal
	test.ExpectSuccess(t, g.AddFilter("invert", filters.Invert, 1, 0))
	test.ExpectSuccess(t, g.AddFilter("gray", filters.Gray, 3, 1))

	// slot already occupied
	err = g.AddFilter("red", filters.Red, 1, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))

	// sealed graph
	test.ExpectSuccess(t, g.Validate())
	err = g.AddFilter("red", filters.Red, 2, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))
}

func TestEvaluateBeforeValidate(t *testing.T) {
	g, err := filtergraph.NewGraph(2, 8, 8)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(g.Evaluate(), curated.ArgumentError))
}

func TestInvertScenario(t *testing.T) {
	g, err := filtergraph.NewGraph(2, 320, 240)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.AddFilter("invert", filters.Invert, 1, 0))
	test.DemandSuccess(t, g.Validate())

	pattern(g.Root())
	test.DemandSuccess(t, g.Evaluate())

	src := g.Root().Pix
	dst := g.Slot(1).Buffer.Pix
	for i := 0; i < len(src); i += framebuffer.BytesPerPixel {
		for _, c := range []int{framebuffer.R, framebuffer.G, framebuffer.B} {
			test.DemandEquality(t, dst[i+c], ^src[i+c])
		}
	}
}

func TestAllBuffersPopulated(t *testing.T) {
	g, err := filtergraph.NewGraph(6, 16, 16)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.AddFilter("red", filters.Red, 1, 0))
	test.DemandSuccess(t, g.AddFilter("invert", filters.Invert, 2, 1))
	test.DemandSuccess(t, g.AddFilter("edge", filters.Edge, 4, 0))
	test.DemandSuccess(t, g.AddFilter("gray", filters.Gray, 5, 2))
	test.DemandSuccess(t, g.Validate())

	// poison every buffer so that unwritten pixels can be seen
	for id := 1; id < g.NumSlots(); id++ {
		if s := g.Slot(id); s != nil {
			for i := range s.Buffer.Pix {
				s.Buffer.Pix[i] = 0x5a
			}
		}
	}

	pattern(g.Root())
	test.DemandSuccess(t, g.Evaluate())

	// four filters plus the root
	var populated int
	for id := 0; id < g.NumSlots(); id++ {
		s := g.Slot(id)
		if s == nil {
			continue
		}
		populated++
		for i := framebuffer.A; i < len(s.Buffer.Pix); i += framebuffer.BytesPerPixel {
			test.DemandEquality(t, s.Buffer.Pix[i], uint8(0xff), s.Name)
		}
	}
	test.ExpectEquality(t, populated, 5)

	// the chained slot sees the output of slot 1 from the same evaluation
	test.ExpectEquality(t, g.Slot(2).Buffer.RGBAAt(3, 3), color.RGBA{R: ^byte(3), G: 0xff, B: 0xff, A: 0xff})
}

func TestIdempotence(t *testing.T) {
	build := func() *filtergraph.Graph {
		g, err := filtergraph.NewGraph(4, 32, 24)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, g.AddFilter("replace_blue", filters.ReplaceBlue, 1, 0))
		test.DemandSuccess(t, g.AddFilter("blur", filters.Blur, 2, 1))
		test.DemandSuccess(t, g.AddFilter("linear_contrast", filters.LinearContrast, 3, 2))
		test.DemandSuccess(t, g.Validate())
		return g
	}

	run := func(g *filtergraph.Graph) string {
		pattern(g.Root())
		test.DemandSuccess(t, g.Evaluate())
		dig := digest.NewSurface()
		for id := 0; id < g.NumSlots(); id++ {
			dig.Add(g.Slot(id).Buffer)
		}
		return dig.Hash()
	}

	g := build()
	first := run(g)
	test.ExpectEquality(t, run(g), first)
	test.ExpectEquality(t, run(build()), first)
}

type closer struct {
	closed *bool
}

func (c closer) Close() error {
	*c.closed = true
	return nil
}

func TestStateAndDestroy(t *testing.T) {
	var closed bool
	var calls int

	count := func(src, dst *framebuffer.Buffer, state *filtergraph.State) error {
		if state.Value == nil {
			state.Value = closer{closed: &closed}
		}
		calls++
		copy(dst.Pix, src.Pix)
		return nil
	}

	g, err := filtergraph.NewGraph(2, 4, 4)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.AddFilter("count", count, 1, 0))
	test.DemandSuccess(t, g.Validate())
	test.DemandSuccess(t, g.Evaluate())
	test.DemandSuccess(t, g.Evaluate())
	test.ExpectEquality(t, calls, 2)

	test.ExpectSuccess(t, g.Destroy())
	test.ExpectSuccess(t, closed)
	test.ExpectEquality(t, g.Slot(1).State.Value, nil)

	// destroyed graph cannot be evaluated
	test.ExpectFailure(t, g.Evaluate())
}

func TestTransformError(t *testing.T) {
	fail := func(src, dst *framebuffer.Buffer, state *filtergraph.State) error {
		return errors.New("bad frame")
	}

	g, err := filtergraph.NewGraph(3, 4, 4)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.AddFilter("copy", filters.Copy, 1, 0))
	test.DemandSuccess(t, g.AddFilter("fail", fail, 2, 1))
	test.DemandSuccess(t, g.Validate())

	err = g.Evaluate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "bad frame")

	bt := curated.Backtrace(err)
	test.DemandEquality(t, len(bt), 1)
	test.ExpectEquality(t, bt[0], "evaluating slot 2 (fail)")
}
