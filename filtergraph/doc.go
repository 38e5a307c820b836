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

// Package filtergraph holds the slots of a filter graph and evaluates them.
//
// A graph has a fixed number of slots. Slot 0 is the root and is filled
// directly from a frame source. Every other slot is either empty or holds a
// Transform that reads the buffer of a source slot and writes its own
// buffer. A source slot must have a smaller index than the slot reading from
// it so evaluating the slots in ascending order means that every transform
// sees a source buffer that has already been updated in the current tick.
//
// Buffers are allocated when a slot is filled and are never reallocated.
// The graph is built with AddFilter() and then sealed with Validate(), after
// which Evaluate() can be called once per tick:
//
//	g, _ := filtergraph.NewGraph(9, 320, 240)
//	g.AddFilter("invert", filters.Invert, 1, 0)
//	g.AddFilter("gray", filters.Gray, 2, 1)
//	g.Validate()
//
//	// each tick
//	src.Capture(g.Root())
//	g.Evaluate()
//
// Each slot carries a State which a Transform can use to keep information
// between ticks. The state is cleared when the graph is destroyed.
package filtergraph
