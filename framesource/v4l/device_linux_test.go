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

package v4l_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framesource/v4l"
	"github.com/framegrid/framegrid/test"
)

func TestOpenMissing(t *testing.T) {
	_, err := v4l.Open(filepath.Join(t.TempDir(), "video99"))
	test.ExpectSuccess(t, curated.Is(err, curated.ConstructionError))
}

func TestOpenNotADevice(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "video0")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o644))

	// a regular file does not answer VIDIOC_QUERYCAP
	_, err := v4l.Open(fn)
	test.ExpectSuccess(t, curated.Is(err, curated.ConstructionError))
}
