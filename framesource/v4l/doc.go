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

// Package v4l implements a frame source for Video4Linux2 capture devices.
// The package talks to the device with ioctl(2) and read(2) through
// golang.org/x/sys/unix and does not require cgo.
//
// Only devices that support the read/write I/O method are usable. Frames
// are requested in one of three packed RGB formats, chosen by the depth
// requested during negotiation:
//
//	32 bits: BGR4 (blue, green, red, padding)
//	24 bits: RGB3 (red, green, blue)
//	16 bits: RGBP (RGB 5:6:5, little endian)
//
// Whatever the device format, captured frames are converted to the
// framebuffer BGRA layout.
//
// The five picture controls map onto the V4L2 user controls brightness,
// hue, saturation (colour), contrast and whiteness (gamma). A control that
// the driver does not report, or reports as disabled, is NotSupported.
// Values are clamped to the range reported by the driver.
package v4l
