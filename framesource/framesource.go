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

// Package framesource defines the interface between the compositor and
// anything that can produce frames of video.
//
// A Source is first negotiated with. The effective Params returned by
// Negotiate() are binding for the life of the source and every buffer passed
// to Capture() must match the effective width and height. Pixel data is
// always delivered in the framebuffer BGRA layout regardless of the format
// used internally by the source.
//
// Picture controls are optional. A source that does not implement a control
// returns a NotSupportedError from GetControl() and SetControl(); it must
// never silently ignore the request.
//
// Implementations are found in the sub-packages v4l and staticimage.
package framesource

import (
	"fmt"

	"github.com/framegrid/framegrid/framebuffer"
)

// Params are the parameters of a source. They are used as a request when
// negotiating and as the answer to that request.
type Params struct {
	Width  int
	Height int

	// bits per pixel
	Depth int

	// format tag describing the source's native layout. informational only,
	// pixels delivered by Capture() are always BGRA
	Format string
}

func (p Params) String() string {
	if p.Format == "" {
		return fmt.Sprintf("%dx%d %dbpp", p.Width, p.Height, p.Depth)
	}
	return fmt.Sprintf("%dx%d %dbpp %s", p.Width, p.Height, p.Depth, p.Format)
}

// Source is implemented by all frame sources.
type Source interface {
	fmt.Stringer

	// Negotiate the parameters of the source. The returned parameters may
	// differ from the request.
	Negotiate(request Params) (Params, error)

	// Capture blocks until a frame is available and copies it into buf.
	Capture(buf *framebuffer.Buffer) error

	// GetControl and SetControl access the picture controls of the source.
	GetControl(ctrl Control) (int, error)
	SetControl(ctrl Control, value int) error

	// Close releases any resources held by the source.
	Close() error
}

// AdjustControl changes the control by delta. Errors from either reading or
// writing the control are returned unaltered.
func AdjustControl(src Source, ctrl Control, delta int) (int, error) {
	v, err := src.GetControl(ctrl)
	if err != nil {
		return 0, err
	}
	v += delta
	err = src.SetControl(ctrl, v)
	if err != nil {
		return 0, err
	}

	// read back the value because the source may have clamped it
	return src.GetControl(ctrl)
}
