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

package gui

// KeyMod identifies the modifier key held when a keyboard event occurred.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	switch m {
	case KeyModShift:
		return "shift"
	case KeyModCtrl:
		return "ctrl"
	case KeyModAlt:
		return "alt"
	}
	return ""
}

// Event is returned by Display.PollEvents(). It is one of the Event* types
// in this package.
type Event interface{}

// EventQuit is sent when the display has been closed or when the user has
// otherwise asked to quit.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}
