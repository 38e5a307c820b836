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

// Package notifications describes events that change how the compositor's
// output is presented. A display may use them to show additional
// information, a flash when a screenshot is taken for example.
package notifications

// Notice describes events that somehow change the presentation of the
// composed surface.
type Notice string

// List of defined notifications.
const (
	// a screenshot has been saved
	NotifyScreenshot Notice = "NotifyScreenshot"

	// a picture control of the frame source has changed
	NotifyControl Notice = "NotifyControl"
)

// Notify is implemented by anything that wants to receive notices.
type Notify interface {
	Notify(notice Notice) error
}
