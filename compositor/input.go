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
	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/notifications"
)

// picture controls by key. the lower case key decreases the control and the
// shifted key increases it
var controlKeys = map[string]framesource.Control{
	"b": framesource.Brightness,
	"h": framesource.Hue,
	"c": framesource.Colour,
	"n": framesource.Contrast,
	"w": framesource.Whiteness,
}

// handleEvents processes every pending event from the display. the first
// error stops processing and any remaining events are dropped
func (c *Compositor) handleEvents() error {
	for _, ev := range c.display.PollEvents() {
		switch ev := ev.(type) {
		case gui.EventQuit:
			c.quit = true

		case gui.EventKeyboard:
			if !ev.Down {
				continue
			}
			err := c.handleKey(ev)
			if err != nil {
				return err
			}
		}

		if c.quit {
			return nil
		}
	}
	return nil
}

func (c *Compositor) handleKey(ev gui.EventKeyboard) error {
	if ctrl, ok := controlKeys[ev.Key]; ok {
		delta := -1
		if ev.Mod == gui.KeyModShift {
			delta = 1
		}

		v, err := framesource.AdjustControl(c.src, ctrl, delta)
		if err != nil {
			return curated.Context(err, "adjusting %s", ctrl)
		}
		logger.Logf(logger.Allow, "compositor", "%s: %d", ctrl, v)

		return c.display.Notify(notifications.NotifyControl)
	}

	switch ev.Key {
	case "q":
		c.quit = true
	case "s":
		fn, err := c.Screenshot()
		if err != nil {
			return curated.Context(err, "taking screenshot")
		}
		logger.Logf(logger.Allow, "screenshot", "saved to %s", fn)
		return c.display.Notify(notifications.NotifyScreenshot)
	case "p":
		logger.Log(logger.Allow, "compositor", c.src)
	}

	return nil
}
