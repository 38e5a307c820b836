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

package framesource_test

import (
	"testing"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/test"
)

// clampSource supports only the brightness control and clamps it to 0..10
type clampSource struct {
	brightness int
}

func (src *clampSource) String() string {
	return "clamp source"
}

func (src *clampSource) Negotiate(request framesource.Params) (framesource.Params, error) {
	return request, nil
}

func (src *clampSource) Capture(buf *framebuffer.Buffer) error {
	return nil
}

func (src *clampSource) GetControl(ctrl framesource.Control) (int, error) {
	if ctrl != framesource.Brightness {
		return 0, curated.Errorf(curated.NotSupportedError, ctrl)
	}
	return src.brightness, nil
}

func (src *clampSource) SetControl(ctrl framesource.Control, value int) error {
	if ctrl != framesource.Brightness {
		return curated.Errorf(curated.NotSupportedError, ctrl)
	}
	src.brightness = min(max(value, 0), 10)
	return nil
}

func (src *clampSource) Close() error {
	return nil
}

func TestAdjustControl(t *testing.T) {
	src := &clampSource{brightness: 9}

	v, err := framesource.AdjustControl(src, framesource.Brightness, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10)

	// clamped value is reported
	v, err = framesource.AdjustControl(src, framesource.Brightness, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10)

	_, err = framesource.AdjustControl(src, framesource.Hue, -1)
	test.ExpectSuccess(t, curated.Is(err, curated.NotSupportedError))
}

func TestControlString(t *testing.T) {
	test.ExpectEquality(t, framesource.Colour.String(), "colour")
	test.ExpectEquality(t, framesource.Whiteness.String(), "whiteness")
	test.ExpectSuccess(t, framesource.Contrast.Valid())
	test.ExpectFailure(t, framesource.Control(framesource.NumControls).Valid())
}

func TestParamsString(t *testing.T) {
	p := framesource.Params{Width: 320, Height: 240, Depth: 32, Format: "BGRA"}
	test.ExpectEquality(t, p.String(), "320x240 32bpp BGRA")
}
