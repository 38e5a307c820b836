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

//go:build linux

package v4l

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/logger"
)

// Device is a framesource.Source for a V4L2 capture device.
type Device struct {
	path   string
	fd     int
	driver string
	card   string

	// the result of negotiation. format is the zero value until Negotiate()
	// has succeeded
	params       framesource.Params
	format       format
	bytesPerLine int

	// frame is the buffer read(2) fills
	frame []byte
}

// NewDevice opens the device at path and checks that it is capable of
// capturing video with the read/write I/O method.
func NewDevice(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("v4l: %s: %w", path, err))
	}

	dev := &Device{
		path: path,
		fd:   fd,
	}

	var cp capability
	err = ioctl(fd, vidiocQueryCap, unsafe.Pointer(&cp))
	if err != nil {
		unix.Close(fd)
		return nil, curated.Errorf(curated.ConstructionError, fmt.Errorf("v4l: %s: not a video4linux2 device: %w", path, err))
	}

	caps := cp.capabilities
	if caps&capDeviceCaps == capDeviceCaps {
		caps = cp.deviceCaps
	}
	if caps&capVideoCapture != capVideoCapture {
		unix.Close(fd)
		return nil, curated.Errorf(curated.ConstructionError, fmt.Sprintf("v4l: %s: not a capture device", path))
	}
	if caps&capReadWrite != capReadWrite {
		unix.Close(fd)
		return nil, curated.Errorf(curated.ConstructionError, fmt.Sprintf("v4l: %s: read/write i/o not supported", path))
	}

	dev.driver = cString(cp.driver[:])
	dev.card = cString(cp.card[:])

	logger.Logf(logger.Allow, "v4l", "opened %s (%s, %s)", path, dev.card, dev.driver)

	return dev, nil
}

func (dev *Device) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("v4l2 device %s (%s, %s): %s;", dev.path, dev.card, dev.driver, dev.params))
	for c := framesource.Control(0); c < framesource.NumControls; c++ {
		v, err := dev.GetControl(c)
		if err != nil {
			s.WriteString(fmt.Sprintf(" %s=n/a", c))
		} else {
			s.WriteString(fmt.Sprintf(" %s=%d", c, v))
		}
	}
	return s.String()
}

// Negotiate implements the framesource.Source interface. The depth of the
// request selects the pixel format. The device may change the width and
// height.
func (dev *Device) Negotiate(request framesource.Params) (framesource.Params, error) {
	var f v4l2Format
	f.typ = bufTypeVideoCapture
	err := ioctl(dev.fd, vidiocGFmt, unsafe.Pointer(&f))
	if err != nil {
		return framesource.Params{}, curated.Errorf(curated.ConstructionError, fmt.Errorf("v4l: get format: %w", err))
	}

	want := formatForDepth(request.Depth)

	pix := f.pix()
	pix.width = uint32(request.Width)
	pix.height = uint32(request.Height)
	pix.pixelFormat = want.fourcc
	pix.field = fieldAny
	pix.bytesPerLine = 0
	pix.sizeImage = 0

	err = ioctl(dev.fd, vidiocSFmt, unsafe.Pointer(&f))
	if err != nil {
		return framesource.Params{}, curated.Errorf(curated.ConstructionError, fmt.Errorf("v4l: set format: %w", err))
	}

	// the driver may not have accepted the format
	got, ok := formatForFourCC(pix.pixelFormat)
	if !ok {
		return framesource.Params{}, curated.Errorf(curated.ConstructionError,
			fmt.Sprintf("v4l: device offered unsupported format %s", fourCCString(pix.pixelFormat)))
	}

	dev.format = got
	dev.params = framesource.Params{
		Width:  int(pix.width),
		Height: int(pix.height),
		Depth:  got.depth,
		Format: got.name,
	}

	dev.bytesPerLine = int(pix.bytesPerLine)
	if dev.bytesPerLine == 0 {
		dev.bytesPerLine = dev.params.Width * got.depth / 8
	}
	size := int(pix.sizeImage)
	if size < dev.bytesPerLine*dev.params.Height {
		size = dev.bytesPerLine * dev.params.Height
	}
	dev.frame = make([]byte, size)

	if dev.params.Width != request.Width || dev.params.Height != request.Height {
		logger.Logf(logger.Allow, "v4l", "requested %dx%d, device chose %dx%d",
			request.Width, request.Height, dev.params.Width, dev.params.Height)
	}

	return dev.params, nil
}

// Capture implements the framesource.Source interface. Blocks until the
// device has delivered a frame.
func (dev *Device) Capture(buf *framebuffer.Buffer) error {
	if dev.frame == nil {
		return curated.Errorf(curated.CaptureError, "v4l: device has not been negotiated with")
	}
	if buf.Width != dev.params.Width || buf.Height != dev.params.Height {
		return curated.Errorf(curated.CaptureError,
			fmt.Sprintf("v4l: buffer is %dx%d, device is %dx%d", buf.Width, buf.Height, dev.params.Width, dev.params.Height))
	}

	n, err := dev.read()
	if err != nil {
		return curated.Errorf(curated.CaptureError, fmt.Errorf("v4l: %w", err))
	}

	if !convertFrame(buf, dev.frame[:n], dev.format, dev.bytesPerLine) {
		return curated.Errorf(curated.CaptureError, fmt.Sprintf("v4l: short frame (%d bytes)", n))
	}

	return nil
}

// read one frame from the device. a read(2) on a capture device returns at
// most one frame
func (dev *Device) read() (int, error) {
	for {
		n, err := unix.Read(dev.fd, dev.frame)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.ErrUnexpectedEOF
		}
		return n, nil
	}
}

func cid(ctrl framesource.Control) uint32 {
	switch ctrl {
	case framesource.Brightness:
		return cidBrightness
	case framesource.Hue:
		return cidHue
	case framesource.Colour:
		return cidSaturation
	case framesource.Contrast:
		return cidContrast
	case framesource.Whiteness:
		return cidWhiteness
	}
	return 0
}

// query returns the driver's description of the control. returns a
// NotSupportedError if the driver does not have the control or if it is
// disabled
func (dev *Device) query(ctrl framesource.Control) (queryCtrl, error) {
	if !ctrl.Valid() {
		return queryCtrl{}, curated.Errorf(curated.ArgumentError, fmt.Sprintf("v4l: unknown control (%d)", ctrl))
	}

	qc := queryCtrl{id: cid(ctrl)}
	err := ioctl(dev.fd, vidiocQueryCtrl, unsafe.Pointer(&qc))
	if err != nil {
		return queryCtrl{}, curated.Errorf(curated.NotSupportedError, fmt.Sprintf("v4l: %s", ctrl))
	}
	if qc.flags&ctrlFlagDisabled == ctrlFlagDisabled {
		return queryCtrl{}, curated.Errorf(curated.NotSupportedError, fmt.Sprintf("v4l: %s (disabled)", ctrl))
	}

	return qc, nil
}

// GetControl implements the framesource.Source interface.
func (dev *Device) GetControl(ctrl framesource.Control) (int, error) {
	qc, err := dev.query(ctrl)
	if err != nil {
		return 0, err
	}

	c := control{id: qc.id}
	err = ioctl(dev.fd, vidiocGCtrl, unsafe.Pointer(&c))
	if err != nil {
		return 0, curated.Errorf(curated.NotSupportedError, fmt.Errorf("v4l: %s: %w", ctrl, err))
	}

	return int(c.value), nil
}

// SetControl implements the framesource.Source interface. The value is
// clamped to the range supported by the driver.
func (dev *Device) SetControl(ctrl framesource.Control, value int) error {
	qc, err := dev.query(ctrl)
	if err != nil {
		return err
	}

	value = min(max(value, int(qc.minimum)), int(qc.maximum))

	c := control{id: qc.id, value: int32(value)}
	err = ioctl(dev.fd, vidiocSCtrl, unsafe.Pointer(&c))
	if err != nil {
		return curated.Errorf(curated.NotSupportedError, fmt.Errorf("v4l: %s: %w", ctrl, err))
	}

	logger.Logf(logger.Allow, "v4l", "%s set to %d", ctrl, value)

	return nil
}

// Close implements the framesource.Source interface.
func (dev *Device) Close() error {
	if dev.fd < 0 {
		return nil
	}
	err := unix.Close(dev.fd)
	dev.fd = -1
	dev.frame = nil
	return err
}
