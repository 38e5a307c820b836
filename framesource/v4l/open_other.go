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

//go:build !linux

package v4l

import (
	"fmt"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framesource"
)

// Open the capture device at path as a framesource.Source. Video4Linux2 is
// only available on linux.
func Open(path string) (framesource.Source, error) {
	return nil, curated.Errorf(curated.ConstructionError, fmt.Sprintf("v4l: %s: video4linux2 is not available on this platform", path))
}
