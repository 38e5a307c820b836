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

// Package compositor drives the filter graph. Every tick the compositor
// handles input from the display, captures a frame from the source into the
// root slot of the graph, evaluates the graph and composes the buffer of
// every slot into a single surface. The surface is then presented by the
// display.
//
// Slots are arranged in a square grid. The grid has ceil(sqrt(N)) columns
// and slot i is placed in column i%side, row i/side. Empty slots are shown
// as black cells.
//
// The compositor starts in the StateInit state. The graph is validated by
// the first call to Tick() or Run(), after which filters can no longer be
// added. Any error from a tick moves the compositor to StateTerminated, as
// does a quit request from the display.
package compositor
