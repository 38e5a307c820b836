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

import (
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/notifications"
)

// Display is implemented by anything that can show the composed surface.
type Display interface {
	notifications.Notify

	// PollEvents returns the events that have occurred since the previous
	// call. It never blocks.
	PollEvents() []Event

	// Present shows the surface. The display must not keep a reference to
	// the surface after returning.
	Present(surface *framebuffer.Buffer) error

	// Destroy releases the display's resources.
	Destroy() error
}
