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
	"testing"
	"unsafe"

	"github.com/framegrid/framegrid/test"
)

func TestStructSizes(t *testing.T) {
	test.ExpectEquality(t, unsafe.Sizeof(capability{}), 104)
	test.ExpectEquality(t, unsafe.Sizeof(pixFormat{}), 48)
	test.ExpectEquality(t, unsafe.Sizeof(control{}), 8)
	test.ExpectEquality(t, unsafe.Sizeof(queryCtrl{}), 68)
}

func TestRequestNumbers(t *testing.T) {
	test.ExpectEquality(t, vidiocQueryCap, 0x80685600)
	test.ExpectEquality(t, vidiocGCtrl, 0xc008561b)
	test.ExpectEquality(t, vidiocSCtrl, 0xc008561c)
	test.ExpectEquality(t, vidiocQueryCtrl, 0xc0445624)

	if unsafe.Sizeof(uintptr(0)) == 8 {
		test.ExpectEquality(t, unsafe.Sizeof(v4l2Format{}), 208)
		test.ExpectEquality(t, vidiocGFmt, 0xc0d05604)
		test.ExpectEquality(t, vidiocSFmt, 0xc0d05605)
	}
}

func TestCString(t *testing.T) {
	test.ExpectEquality(t, cString([]byte{'u', 'v', 'c', 0, 'x'}), "uvc")
	test.ExpectEquality(t, cString([]byte{'a', 'b'}), "ab")
}
