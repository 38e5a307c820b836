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

package compositor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/overlay"
	"github.com/framegrid/framegrid/performance/limiter"
	"github.com/framegrid/framegrid/prefs"
)

// State of the compositor.
type State int

// List of valid State values.
const (
	StateInit State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown state"
}

var (
	overlayForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayBackground = color.RGBA{A: 0xff}
)

// Compositor owns the source, the filter graph and the composed surface.
type Compositor struct {
	Prefs *Preferences

	src     framesource.Source
	params  framesource.Params
	graph   *filtergraph.Graph
	display gui.Display

	// the composed surface and the number of cells along each side of it
	surface *framebuffer.Buffer
	side    int

	lim *limiter.Limiter
	fps *overlay.Text

	state State
	quit  bool
}

// NewCompositor negotiates with the source and creates a graph with the
// specified number of slots. The slot buffers and the composed surface are
// sized according to the effective parameters of the source.
//
// The compositor takes ownership of the source. It will be closed by
// Destroy(), or immediately if NewCompositor() fails.
func NewCompositor(src framesource.Source, request framesource.Params, numSlots int) (*Compositor, error) {
	c := &Compositor{
		src: src,
	}

	var err error

	c.Prefs, err = NewPreferences()
	if err != nil {
		_ = src.Close()
		return nil, curated.Errorf(curated.ConstructionError, err)
	}

	c.params, err = src.Negotiate(request)
	if err != nil {
		_ = src.Close()
		return nil, curated.Context(err, "negotiating with %s", src)
	}
	logger.Logf(logger.Allow, "compositor", "negotiated %s", c.params)

	c.graph, err = filtergraph.NewGraph(numSlots, c.params.Width, c.params.Height)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	c.side = int(math.Ceil(math.Sqrt(float64(numSlots))))
	c.surface = framebuffer.NewBuffer(c.side*c.params.Width, c.side*c.params.Height)

	c.lim = limiter.NewLimiter(c.targetInterval())
	c.Prefs.TargetInterval.SetHookPost(func(_ prefs.Value) error {
		c.lim.SetTarget(c.targetInterval())
		return nil
	})

	c.fps = overlay.NewBasicText()

	return c, nil
}

func (c *Compositor) targetInterval() time.Duration {
	return time.Duration(c.Prefs.TargetInterval.Get().(int)) * time.Millisecond
}

func (c *Compositor) String() string {
	return fmt.Sprintf("%s: %d slots in a %dx%d grid", c.params, c.graph.NumSlots(), c.side, c.side)
}

// Graph returns the filter graph. Filters should be added to the graph before
// the first tick.
func (c *Compositor) Graph() *filtergraph.Graph {
	return c.graph
}

// Params returns the effective parameters of the source.
func (c *Compositor) Params() framesource.Params {
	return c.params
}

// SurfaceSize returns the size of the composed surface. Displays should be
// created with this size.
func (c *Compositor) SurfaceSize() (int, int) {
	return c.surface.Width, c.surface.Height
}

// Surface returns the composed surface. The surface is changed by every
// tick.
func (c *Compositor) Surface() *framebuffer.Buffer {
	return c.surface
}

// AttachDisplay sets the display used by the compositor. It must be called
// before the first tick.
func (c *Compositor) AttachDisplay(dsp gui.Display) {
	c.display = dsp
}

// SetFPSText replaces the face used to draw the tick rate. The compositor
// takes ownership of the text and will close it when Destroy() is called.
func (c *Compositor) SetFPSText(txt *overlay.Text) {
	if c.fps != nil {
		_ = c.fps.Close()
	}
	c.fps = txt
}

// State returns the current state of the compositor.
func (c *Compositor) State() State {
	return c.state
}

// Measured returns the measured tick rate.
func (c *Compositor) Measured() float64 {
	return c.lim.Measured()
}

// start validates the graph and moves the compositor to StateRunning
func (c *Compositor) start() error {
	if c.display == nil {
		return curated.Errorf(curated.ArgumentError, "compositor: no display attached")
	}

	err := c.graph.Validate()
	if err != nil {
		return curated.Context(err, "validating graph")
	}

	c.state = StateRunning
	logger.Log(logger.Allow, "compositor", c)

	return nil
}

// Run ticks until the display asks to quit or until an error occurs. The
// compositor is always in StateTerminated when Run() returns.
func (c *Compositor) Run() error {
	for c.state != StateTerminated {
		err := c.Tick()
		if err != nil {
			return err
		}
	}
	return nil
}

// Tick runs one iteration of the main loop. Any error moves the compositor
// to StateTerminated. It is an error to call Tick() once the compositor has
// terminated.
func (c *Compositor) Tick() error {
	switch c.state {
	case StateTerminated:
		return curated.Errorf(curated.ArgumentError, "compositor: tick after termination")
	case StateInit:
		err := c.start()
		if err != nil {
			c.state = StateTerminated
			return err
		}
	}

	err := c.tick()
	if err != nil {
		c.state = StateTerminated
		return err
	}

	if c.quit {
		c.state = StateTerminated
		logger.Log(logger.Allow, "compositor", "quit")
	}

	return nil
}

func (c *Compositor) tick() error {
	c.lim.Start()

	err := c.handleEvents()
	if err != nil {
		return err
	}

	// quit is checked before any other work is done
	if c.quit {
		return nil
	}

	err = c.src.Capture(c.graph.Root())
	if err != nil {
		return curated.Context(err, "capturing from %s", c.src)
	}

	err = c.graph.Evaluate()
	if err != nil {
		return err
	}

	c.composite()

	if c.Prefs.FPSOverlay.Get().(bool) {
		err = c.fps.DrawShaded(c.surface, strconv.Itoa(int(c.lim.Measured())), overlayForeground, overlayBackground)
		if err != nil {
			return curated.Context(err, "drawing tick rate")
		}
	}

	err = c.display.Present(c.surface)
	if err != nil {
		return curated.Context(err, "presenting surface")
	}

	c.lim.Wait()

	return nil
}

// cell returns the area of the surface occupied by the slot
func (c *Compositor) cell(id int) image.Rectangle {
	x := (id % c.side) * c.params.Width
	y := (id / c.side) * c.params.Height
	return image.Rect(x, y, x+c.params.Width, y+c.params.Height)
}

// composite copies the buffer of every slot into its cell of the surface
func (c *Compositor) composite() {
	for id := 0; id < c.graph.NumSlots(); id++ {
		s := c.graph.Slot(id)
		if s == nil || s.Buffer == nil {
			c.surface.FillRect(c.cell(id), overlayBackground)
			continue
		}
		r := c.cell(id)
		c.surface.Blit(s.Buffer, r.Min.X, r.Min.Y)
	}

	// cells in the last row that are beyond the last slot
	for id := c.graph.NumSlots(); id < c.side*c.side; id++ {
		c.surface.FillRect(c.cell(id), overlayBackground)
	}
}

// Destroy releases the graph, the source and the tick rate text. The
// display is not destroyed. The first error encountered is returned.
func (c *Compositor) Destroy() error {
	c.state = StateTerminated

	var first error

	if err := c.graph.Destroy(); err != nil {
		first = err
	}
	if err := c.src.Close(); err != nil && first == nil {
		first = curated.Context(err, "closing %s", c.src)
	}
	if c.fps != nil {
		if err := c.fps.Close(); err != nil && first == nil {
			first = err
		}
		c.fps = nil
	}

	return first
}
