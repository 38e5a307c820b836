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

// Package staticimage implements a frame source that delivers the same
// decoded P6 image on every capture. Useful when no capture hardware is
// available and for deterministic runs.
package staticimage

import (
	"fmt"
	"os"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/ppm"
)

// MaxPixels is the largest image that will be accepted.
const MaxPixels = 1024 * 768

// Format is the format tag reported by Negotiate().
const Format = "BGRA"

// Image is a framesource.Source that always captures the same frame.
type Image struct {
	path  string
	frame *framebuffer.Buffer
}

// NewImage decodes the image at path.
func NewImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("staticimage: %w", err))
	}
	defer f.Close()

	frame, err := ppm.Decode(f, MaxPixels)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("staticimage: %s: %w", path, err))
	}

	logger.Logf(logger.Allow, "staticimage", "%s decoded (%dx%d)", path, frame.Width, frame.Height)

	return &Image{
		path:  path,
		frame: frame,
	}, nil
}

func (img *Image) String() string {
	return fmt.Sprintf("static image %s: %s (no picture controls)", img.path, img.params())
}

func (img *Image) params() framesource.Params {
	return framesource.Params{
		Width:  img.frame.Width,
		Height: img.frame.Height,
		Depth:  framebuffer.BytesPerPixel * 8,
		Format: Format,
	}
}

// Negotiate implements the framesource.Source interface. The request is
// ignored and the parameters of the decoded image are returned.
func (img *Image) Negotiate(_ framesource.Params) (framesource.Params, error) {
	return img.params(), nil
}

// Capture implements the framesource.Source interface.
func (img *Image) Capture(buf *framebuffer.Buffer) error {
	if !buf.CopyFrom(img.frame) {
		return curated.Errorf(curated.CaptureError,
			fmt.Sprintf("staticimage: buffer is %dx%d, image is %dx%d", buf.Width, buf.Height, img.frame.Width, img.frame.Height))
	}
	return nil
}

// GetControl implements the framesource.Source interface. Always returns
// NotSupportedError.
func (img *Image) GetControl(ctrl framesource.Control) (int, error) {
	return 0, curated.Errorf(curated.NotSupportedError, fmt.Sprintf("staticimage: %s", ctrl))
}

// SetControl implements the framesource.Source interface. Always returns
// NotSupportedError.
func (img *Image) SetControl(ctrl framesource.Control, _ int) error {
	return curated.Errorf(curated.NotSupportedError, fmt.Sprintf("staticimage: %s", ctrl))
}

// Close implements the framesource.Source interface.
func (img *Image) Close() error {
	return nil
}
