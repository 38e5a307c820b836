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

package filtergraph

import (
	"fmt"
	"io"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/logger"
)

// Transform reads the src buffer and writes every pixel of the dst buffer.
// Both buffers are the same size. The state is owned by the slot and is the
// only place a transform may keep information between calls.
type Transform func(src, dst *framebuffer.Buffer, state *State) error

// State is the per-slot storage available to a Transform. Value is nil the
// first time a transform is called. If Value implements io.Closer it will be
// closed when the graph is destroyed.
type State struct {
	Value any
}

// Slot is a single node in the graph.
type Slot struct {
	ID   int
	Name string

	// the slot that Transform reads from. the root slot has no source and
	// the value is -1
	Source    int
	Transform Transform

	Buffer *framebuffer.Buffer
	State  State
}

func (s *Slot) String() string {
	if s.Source < 0 {
		return fmt.Sprintf("%d: %s", s.ID, s.Name)
	}
	return fmt.Sprintf("%d: %s <- %d", s.ID, s.Name, s.Source)
}

// Graph is a fixed size array of slots.
type Graph struct {
	width  int
	height int

	// unoccupied slots are nil. the root slot is always occupied
	slots []*Slot

	sealed    bool
	destroyed bool
}

// RootName is the name of slot 0.
const RootName = "source"

// NewGraph creates a graph with numSlots slots. Buffers in the graph will be
// width by height pixels. Only the root slot is occupied.
func NewGraph(numSlots int, width int, height int) (*Graph, error) {
	if numSlots < 1 {
		return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: number of slots must be at least 1 (%d)", numSlots))
	}
	if width < 1 || height < 1 {
		return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: illegal dimensions (%dx%d)", width, height))
	}

	g := &Graph{
		width:  width,
		height: height,
		slots:  make([]*Slot, numSlots),
	}

	g.slots[0] = &Slot{
		ID:     0,
		Name:   RootName,
		Source: -1,
		Buffer: framebuffer.NewBuffer(width, height),
	}

	return g, nil
}

// NumSlots returns the number of slots in the graph, occupied or not.
func (g *Graph) NumSlots() int {
	return len(g.slots)
}

// Width returns the width of every buffer in the graph.
func (g *Graph) Width() int {
	return g.width
}

// Height returns the height of every buffer in the graph.
func (g *Graph) Height() int {
	return g.height
}

// Root returns the buffer of slot 0. A frame source should capture into this
// buffer before Evaluate() is called.
func (g *Graph) Root() *framebuffer.Buffer {
	return g.slots[0].Buffer
}

// Slot returns the slot with the ID. Returns nil if the slot is unoccupied
// or if the ID is out of range.
func (g *Graph) Slot(id int) *Slot {
	if id < 0 || id >= len(g.slots) {
		return nil
	}
	return g.slots[id]
}

// AddFilter puts a transform in a slot. The slot must be unoccupied and must
// not be the root slot. The source slot must be occupied and must have a
// smaller ID than the slot being filled.
func (g *Graph) AddFilter(name string, transform Transform, id int, source int) error {
	if g.destroyed {
		return curated.Errorf(curated.ArgumentError, "filtergraph: graph has been destroyed")
	}
	if g.sealed {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: cannot add %s after the graph has been validated", name))
	}
	if transform == nil {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: %s has no transform", name))
	}
	if id < 1 || id >= len(g.slots) {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: slot for %s must be in the range 1 to %d (%d)", name, len(g.slots)-1, id))
	}
	if source < 0 || source >= id {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: source for %s in slot %d must be in the range 0 to %d (%d)", name, id, id-1, source))
	}
	if g.slots[id] != nil {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: slot %d is already occupied by %s", id, g.slots[id].Name))
	}
	if g.slots[source] == nil || g.slots[source].Buffer == nil {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: source slot %d for %s is empty", source, name))
	}

	g.slots[id] = &Slot{
		ID:        id,
		Name:      name,
		Source:    source,
		Transform: transform,
		Buffer:    framebuffer.NewBuffer(g.width, g.height),
	}

	logger.Logf(logger.Allow, "filtergraph", "slot %s", g.slots[id])

	return nil
}

// Validate checks that every occupied slot has a buffer and a source that is
// also occupied. A successfully validated graph is sealed and no more filters
// can be added.
func (g *Graph) Validate() error {
	if g.destroyed {
		return curated.Errorf(curated.ArgumentError, "filtergraph: graph has been destroyed")
	}

	for id, s := range g.slots {
		if s == nil {
			continue
		}
		if s.Buffer == nil || !s.Buffer.SameSize(g.slots[0].Buffer) {
			return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: slot %d has no buffer", id))
		}
		if id == 0 {
			continue
		}
		if s.Source < 0 || s.Source >= id || g.slots[s.Source] == nil {
			return curated.Errorf(curated.ArgumentError, fmt.Sprintf("filtergraph: slot %d has an illegal source (%d)", id, s.Source))
		}
	}

	g.sealed = true

	return nil
}

// Evaluate runs the transform of every occupied slot, in ascending order.
// The first error stops evaluation.
func (g *Graph) Evaluate() error {
	if !g.sealed || g.destroyed {
		return curated.Errorf(curated.ArgumentError, "filtergraph: graph must be validated before evaluation")
	}

	for _, s := range g.slots[1:] {
		if s == nil {
			continue
		}
		err := s.Transform(g.slots[s.Source].Buffer, s.Buffer, &s.State)
		if err != nil {
			return curated.Context(err, "evaluating slot %d (%s)", s.ID, s.Name)
		}
	}

	return nil
}

// Destroy releases the buffers and the state of every slot. The first error
// from closing a state value is returned but every slot is released
// regardless.
func (g *Graph) Destroy() error {
	if g.destroyed {
		return nil
	}
	g.destroyed = true

	var first error
	for _, s := range g.slots {
		if s == nil {
			continue
		}
		if c, ok := s.State.Value.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = curated.Context(err, "destroying slot %d (%s)", s.ID, s.Name)
			}
		}
		s.State.Value = nil
		s.Buffer = nil
	}

	return first
}
