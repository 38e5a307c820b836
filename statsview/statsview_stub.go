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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/framegrid/framegrid/curated"
)

// Address of the stats server.
const Address = ""

// Launch is a stub for builds without the statsview build constraint.
func Launch(_ io.Writer) error {
	return curated.Errorf(curated.NotSupportedError, "statsview not included in this build")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
