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

package curated

// Error categories. Each category is a pattern that takes a single value
// describing the specific problem. For example:
//
//	curated.Errorf(curated.ArgumentError, fmt.Sprintf("slot %d out of range", id))
//
// Use Is() to test the outermost category and Has() to search the chain.
const (
	// a device, display or resource could not be initialised. fatal at
	// startup
	ConstructionError = "construction error: %v"

	// illegal arguments. filter graph wiring errors are fatal at build time
	ArgumentError = "argument error: %v"

	// the operation is not implemented by the active frame source
	NotSupportedError = "not supported: %v"

	// the frame source failed to deliver a frame. ends the run loop
	CaptureError = "capture error: %v"

	// file input/output failure
	IOError = "io error: %v"
)
