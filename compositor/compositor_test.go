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

package compositor_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrid/framegrid/compositor"
	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/digest"
	"github.com/framegrid/framegrid/filters"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/framesource/staticimage"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/notifications"
	"github.com/framegrid/framegrid/ppm"
	"github.com/framegrid/framegrid/prefs"
	"github.com/framegrid/framegrid/test"
)

// display delivers one group of events per call to PollEvents() and keeps a
// copy of every presented surface
type display struct {
	events    [][]gui.Event
	presented []*framebuffer.Buffer
	notices   []notifications.Notice
}

func (dsp *display) PollEvents() []gui.Event {
	if len(dsp.events) == 0 {
		return nil
	}
	ev := dsp.events[0]
	dsp.events = dsp.events[1:]
	return ev
}

func (dsp *display) Present(surface *framebuffer.Buffer) error {
	dsp.presented = append(dsp.presented, surface.Clone())
	return nil
}

func (dsp *display) Notify(notice notifications.Notice) error {
	dsp.notices = append(dsp.notices, notice)
	return nil
}

func (dsp *display) Destroy() error {
	return nil
}

func key(k string, mod gui.KeyMod) gui.Event {
	return gui.EventKeyboard{Key: k, Mod: mod, Down: true}
}

var sourceColour = color.RGBA{R: 10, G: 20, B: 30, A: 0xff}

// newCompositor creates a compositor reading a static image of the specified
// size. pacing and the tick rate overlay are disabled
func newCompositor(t *testing.T, width int, height int, numSlots int) (*compositor.Compositor, *display) {
	t.Helper()

	img := framebuffer.NewBuffer(width, height)
	img.Fill(sourceColour)

	fn := filepath.Join(t.TempDir(), "source.ppm")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ppm.Encode(f, img))
	test.DemandSuccess(t, f.Close())

	src, err := staticimage.NewImage(fn)
	test.DemandSuccess(t, err)

	c, err := compositor.NewCompositor(src, framesource.Params{Width: 320, Height: 240, Depth: 32}, numSlots)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = c.Destroy() })

	test.DemandSuccess(t, c.Prefs.TargetInterval.Set(0))
	test.DemandSuccess(t, c.Prefs.FPSOverlay.Set(false))
	test.DemandSuccess(t, c.Prefs.ScreenshotDir.Set(t.TempDir()))

	dsp := &display{}
	c.AttachDisplay(dsp)

	return c, dsp
}

func TestTiling(t *testing.T) {
	c, dsp := newCompositor(t, 4, 2, 3)

	invert, err := filters.Lookup("invert", filters.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Graph().AddFilter("invert", invert, 1, 0))

	w, h := c.SurfaceSize()
	test.ExpectEquality(t, w, 8)
	test.ExpectEquality(t, h, 4)

	test.DemandSuccess(t, c.Tick())
	test.ExpectEquality(t, c.State(), compositor.StateRunning)
	test.DemandEquality(t, len(dsp.presented), 1)

	inverted := color.RGBA{R: ^sourceColour.R, G: ^sourceColour.G, B: ^sourceColour.B, A: 0xff}
	black := color.RGBA{A: 0xff}

	surface := dsp.presented[0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			var expected color.RGBA
			switch image.Pt(x/4, y/2) {
			case image.Pt(0, 0):
				expected = sourceColour
			case image.Pt(1, 0):
				expected = inverted
			default:
				// slot 2 is empty and there is no slot 3
				expected = black
			}
			test.ExpectEquality(t, surface.RGBAAt(x, y), expected, x, y)
		}
	}
}

func TestFPSOverlay(t *testing.T) {
	c, dsp := newCompositor(t, 32, 32, 1)
	test.DemandSuccess(t, c.Prefs.FPSOverlay.Set(true))

	test.DemandSuccess(t, c.Tick())
	test.DemandEquality(t, len(dsp.presented), 1)

	// the tick rate is drawn white on black over the top-left corner
	var white, black int
	surface := dsp.presented[0]
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			switch surface.RGBAAt(x, y) {
			case color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}:
				white++
			case color.RGBA{A: 0xff}:
				black++
			}
		}
	}
	test.ExpectInequality(t, white, 0)
	test.ExpectInequality(t, black, 0)

	// away from the overlay the source is untouched
	test.ExpectEquality(t, surface.RGBAAt(31, 31), sourceColour)
}

func TestQuit(t *testing.T) {
	c, dsp := newCompositor(t, 4, 4, 1)
	dsp.events = [][]gui.Event{nil, {key("q", gui.KeyModNone)}}

	test.ExpectSuccess(t, c.Run())
	test.ExpectEquality(t, c.State(), compositor.StateTerminated)

	// the quit is observed at the top of the second tick, before a frame is
	// presented
	test.ExpectEquality(t, len(dsp.presented), 1)

	test.ExpectFailure(t, c.Tick())
}

func TestWindowClosed(t *testing.T) {
	c, dsp := newCompositor(t, 4, 4, 1)
	dsp.events = [][]gui.Event{{gui.EventQuit{}}}

	test.ExpectSuccess(t, c.Run())
	test.ExpectEquality(t, len(dsp.presented), 0)
}

func TestControlNotSupported(t *testing.T) {
	c, dsp := newCompositor(t, 4, 4, 1)
	dsp.events = [][]gui.Event{nil, {key("b", gui.KeyModShift)}, {key("q", gui.KeyModNone)}}

	err := c.Run()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.NotSupportedError))
	test.ExpectEquality(t, c.State(), compositor.StateTerminated)

	bt := curated.Backtrace(err)
	test.DemandEquality(t, len(bt), 1)
	test.ExpectEquality(t, bt[0], "adjusting brightness")

	// the run was aborted. the quit event was never seen
	test.ExpectEquality(t, len(dsp.presented), 1)
	test.ExpectEquality(t, len(dsp.events), 1)
	test.ExpectEquality(t, len(dsp.notices), 0)
}

func TestScreenshot(t *testing.T) {
	c, dsp := newCompositor(t, 4, 2, 2)

	invert, err := filters.Lookup("invert", filters.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, c.Graph().AddFilter("invert", invert, 1, 0))

	dir := c.Prefs.ScreenshotDir.String()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "shot0.ppm"), nil, 0o644))

	dsp.events = [][]gui.Event{nil, {key("s", gui.KeyModNone)}}
	test.DemandSuccess(t, c.Tick())
	test.DemandSuccess(t, c.Tick())

	test.DemandEquality(t, len(dsp.notices), 1)
	test.ExpectEquality(t, dsp.notices[0], notifications.NotifyScreenshot)

	// the existing file is untouched
	info, err := os.Stat(filepath.Join(dir, "shot0.ppm"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(0))

	f, err := os.Open(filepath.Join(dir, "shot1.ppm"))
	test.DemandSuccess(t, err)
	defer f.Close()

	shot, err := ppm.Decode(f, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, digest.Buffer(shot), digest.Buffer(dsp.presented[0]))

	fn, err := c.Screenshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, filepath.Join(dir, "shot2.ppm"))
}

func TestScreenshotExhausted(t *testing.T) {
	c, dsp := newCompositor(t, 4, 4, 1)
	test.DemandSuccess(t, c.Prefs.ScreenshotAttempts.Set(2))

	dir := c.Prefs.ScreenshotDir.String()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "shot0.ppm"), nil, 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "shot1.ppm"), nil, 0o644))

	_, err := c.Screenshot()
	test.ExpectSuccess(t, curated.Is(err, curated.IOError))

	dsp.events = [][]gui.Event{{key("s", gui.KeyModNone)}}
	err = c.Tick()
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))
	test.ExpectEquality(t, c.State(), compositor.StateTerminated)

	_, err = os.Stat(filepath.Join(dir, "shot2.ppm"))
	test.ExpectFailure(t, err)
}

func TestIdempotence(t *testing.T) {
	c, dsp := newCompositor(t, 16, 8, 4)

	for id, name := range []string{"invert", "edge", "gray"} {
		tr, err := filters.Lookup(name, filters.Options{})
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, c.Graph().AddFilter(name, tr, id+1, id))
	}

	test.DemandSuccess(t, c.Tick())
	test.DemandSuccess(t, c.Tick())
	test.DemandEquality(t, len(dsp.presented), 2)
	test.ExpectEquality(t, digest.Buffer(dsp.presented[0]), digest.Buffer(dsp.presented[1]))
}

func TestNoDisplay(t *testing.T) {
	c, _ := newCompositor(t, 4, 4, 1)
	c.AttachDisplay(nil)

	err := c.Tick()
	test.ExpectSuccess(t, curated.Is(err, curated.ArgumentError))
	test.ExpectEquality(t, c.State(), compositor.StateTerminated)
}

func TestPreferences(t *testing.T) {
	p, err := compositor.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.TargetInterval.Get().(int), 33)
	test.ExpectEquality(t, p.ScreenshotAttempts.Get().(int), 1000)
	test.ExpectEquality(t, p.ScreenshotDir.String(), ".")
	test.ExpectEquality(t, p.FPSOverlay.Get().(bool), true)

	test.ExpectFailure(t, p.ScreenshotAttempts.Set(0))
	test.ExpectFailure(t, p.TargetInterval.Set(-1))
	test.ExpectEquality(t, p.ScreenshotAttempts.Get().(int), 1000)

	prefs.PushCommandLineStack("compositor.targetinterval::10; compositor.fpsoverlay::false; unknown::1")
	test.ExpectSuccess(t, p.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	test.ExpectEquality(t, p.TargetInterval.Get().(int), 10)
	test.ExpectEquality(t, p.FPSOverlay.Get().(bool), false)
}
