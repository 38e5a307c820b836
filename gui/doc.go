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

// Package gui defines the interface between the compositor and the display
// that presents the composed surface. Implementations are in the sdl and
// headless sub-packages.
//
// Events from the display are GUI agnostic. A keyboard event names the key
// with a lower case string and records the modifier separately, so a
// capital B arrives as:
//
//	gui.EventKeyboard{Key: "b", Mod: gui.KeyModShift, Down: true}
package gui
