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

// Package headless is a gui.Display that shows nothing. Keyboard events are
// read from a terminal in raw mode, if there is one, so a headless run can
// be controlled with the same keys as a windowed run.
//
// The display can end a run after a fixed number of frames and can add
// every frame it is given to a digest.
package headless

import (
	"os"

	"github.com/framegrid/framegrid/digest"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/notifications"
)

// ctrl-c. raw mode means the terminal no longer generates SIGINT
const keyInterrupt = 0x03

// Display implements the gui.Display interface.
type Display struct {
	term *terminal

	// the number of frames to present before sending an EventQuit. a value
	// of zero means there is no limit
	limit     int
	presented int

	dig *digest.Surface

	buf []byte
}

// NewDisplay creates a headless display. Keys are read from input if it is a
// terminal. input can be nil. The display asks to quit after limit frames
// have been presented, unless limit is zero. Every frame is added to the
// digest if dig is not nil.
func NewDisplay(input *os.File, limit int, dig *digest.Surface) (*Display, error) {
	dsp := &Display{
		limit: limit,
		dig:   dig,
		buf:   make([]byte, 32),
	}

	if input != nil {
		t, err := newTerminal(input)
		if err != nil {
			logger.Logf(logger.Allow, "headless", "no keyboard input: %v", err)
		} else {
			dsp.term = t
		}
	}

	return dsp, nil
}

// Presented returns the number of frames presented.
func (dsp *Display) Presented() int {
	return dsp.presented
}

// PollEvents implements the gui.Display interface.
func (dsp *Display) PollEvents() []gui.Event {
	var ev []gui.Event

	if dsp.term != nil {
		n := dsp.term.read(dsp.buf)
		ev = append(ev, decodeKeys(dsp.buf[:n])...)
	}

	if dsp.limit > 0 && dsp.presented >= dsp.limit {
		ev = append(ev, gui.EventQuit{})
	}

	return ev
}

// decodeKeys converts terminal input to keyboard events. capital letters
// are reported as the lower case key with the shift modifier
func decodeKeys(b []byte) []gui.Event {
	var ev []gui.Event
	for _, c := range b {
		switch {
		case c == keyInterrupt:
			ev = append(ev, gui.EventQuit{})
		case c >= 'a' && c <= 'z':
			ev = append(ev, gui.EventKeyboard{Key: string(rune(c)), Down: true})
		case c >= 'A' && c <= 'Z':
			ev = append(ev, gui.EventKeyboard{Key: string(rune(c - 'A' + 'a')), Mod: gui.KeyModShift, Down: true})
		}
	}
	return ev
}

// Present implements the gui.Display interface.
func (dsp *Display) Present(surface *framebuffer.Buffer) error {
	dsp.presented++
	if dsp.dig != nil {
		dsp.dig.Add(surface)
	}
	return nil
}

// Notify implements the notifications.Notify interface.
func (dsp *Display) Notify(notice notifications.Notice) error {
	logger.Logf(logger.Allow, "headless", "%s at frame %d", notice, dsp.presented)
	return nil
}

// Destroy implements the gui.Display interface. The terminal is returned to
// the mode it was in before the display was created.
func (dsp *Display) Destroy() error {
	if dsp.term != nil {
		err := dsp.term.restore()
		dsp.term = nil
		return err
	}
	return nil
}
