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

package framesource

// Control identifies one of the picture controls a source may support.
type Control int

// List of valid Control values.
const (
	Brightness Control = iota
	Hue
	Colour
	Contrast
	Whiteness
)

// NumControls is the number of Control values.
const NumControls = 5

func (c Control) String() string {
	switch c {
	case Brightness:
		return "brightness"
	case Hue:
		return "hue"
	case Colour:
		return "colour"
	case Contrast:
		return "contrast"
	case Whiteness:
		return "whiteness"
	}
	return "unknown control"
}

// Valid returns true if the control is one of the listed Control values.
func (c Control) Valid() bool {
	return c >= Brightness && c < NumControls
}
