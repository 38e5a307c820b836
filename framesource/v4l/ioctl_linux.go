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
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request encoding. see linux/ioctl.h
const (
	iocWrite = 1
	iocRead  = 2

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func ioc(dir uintptr, nr uintptr, size uintptr) uintptr {
	return dir<<iocDirShift | size<<iocSizeShift | uintptr('V')<<iocTypeShift | nr<<iocNRShift
}

// struct v4l2_capability
type capability struct {
	driver       [16]byte
	card         [32]byte
	busInfo      [32]byte
	version      uint32
	capabilities uint32
	deviceCaps   uint32
	reserved     [3]uint32
}

// capability flags
const (
	capVideoCapture = 0x00000001
	capReadWrite    = 0x01000000
	capDeviceCaps   = 0x80000000
)

// struct v4l2_pix_format
type pixFormat struct {
	width        uint32
	height       uint32
	pixelFormat  uint32
	field        uint32
	bytesPerLine uint32
	sizeImage    uint32
	colorspace   uint32
	priv         uint32
	flags        uint32
	ycbcrEnc     uint32
	quantization uint32
	xferFunc     uint32
}

// struct v4l2_format. the union is 200 bytes and contains pointers so is
// pointer aligned
type v4l2Format struct {
	typ   uint32
	union [200 / unsafe.Sizeof(uintptr(0))]uintptr
}

func (f *v4l2Format) pix() *pixFormat {
	return (*pixFormat)(unsafe.Pointer(&f.union[0]))
}

const bufTypeVideoCapture = 1

const fieldAny = 0

// struct v4l2_control
type control struct {
	id    uint32
	value int32
}

// struct v4l2_queryctrl
type queryCtrl struct {
	id           uint32
	typ          uint32
	name         [32]byte
	minimum      int32
	maximum      int32
	step         int32
	defaultValue int32
	flags        uint32
	reserved     [2]uint32
}

const ctrlFlagDisabled = 0x0001

// user control IDs
const (
	cidBase       = 0x00980900
	cidBrightness = cidBase + 0
	cidContrast   = cidBase + 1
	cidSaturation = cidBase + 2
	cidHue        = cidBase + 3
	cidWhiteness  = cidBase + 16
)

var (
	vidiocQueryCap  = ioc(iocRead, 0, unsafe.Sizeof(capability{}))
	vidiocGFmt      = ioc(iocRead|iocWrite, 4, unsafe.Sizeof(v4l2Format{}))
	vidiocSFmt      = ioc(iocRead|iocWrite, 5, unsafe.Sizeof(v4l2Format{}))
	vidiocGCtrl     = ioc(iocRead|iocWrite, 27, unsafe.Sizeof(control{}))
	vidiocSCtrl     = ioc(iocRead|iocWrite, 28, unsafe.Sizeof(control{}))
	vidiocQueryCtrl = ioc(iocRead|iocWrite, 36, unsafe.Sizeof(queryCtrl{}))
)

// ioctl retries requests interrupted by a signal
func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
		switch errno {
		case 0:
			return nil
		case unix.EINTR:
			continue
		default:
			return errno
		}
	}
}

// cString returns the string in a NUL terminated byte array
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
