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

// Package sdl is a gui.Display that shows the composed surface in an SDL
// window. The composed surface is uploaded to a streaming texture once per
// frame.
//
// SDL requires that calls are made from the main thread. The caller must
// make sure that NewDisplay() and every method of the display are called
// from the thread that has called runtime.LockOSThread().
package sdl

import (
	"strings"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/notifications"
	"github.com/framegrid/framegrid/version"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of frames the screenshot flash is shown for
const flashFrames = 4

// Display implements the gui.Display interface.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	flash int
}

// NewDisplay creates a window big enough to show a surface of the specified
// size.
func NewDisplay(width int, height int) (*Display, error) {
	if width < 1 || height < 1 {
		return nil, curated.Errorf(curated.ArgumentError, "sdl: display size must be positive")
	}

	dsp := &Display{}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(curated.ConstructionError, err)
	}

	ver, _, _ := version.Version()
	dsp.window, err = sdl.CreateWindow(version.ApplicationName+" "+ver,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(curated.ConstructionError, err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(curated.ConstructionError, err)
	}

	err = dsp.resize(int32(width), int32(height))
	if err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(curated.ConstructionError, err)
	}

	logger.Logf(logger.Allow, "sdl", "window opened (%dx%d)", width, height)

	return dsp, nil
}

// resize recreates the texture. the window is resized to match
func (dsp *Display) resize(width int32, height int32) error {
	if dsp.texture != nil {
		_ = dsp.texture.Destroy()
		dsp.texture = nil
	}

	var err error

	// ARGB8888 is a packed format. on a little-endian machine the bytes are
	// in the same order as a framebuffer.Buffer (B, G, R, A)
	dsp.texture, err = dsp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		width, height)
	if err != nil {
		return err
	}

	dsp.width = width
	dsp.height = height
	dsp.window.SetSize(width, height)

	return nil
}

// Present implements the gui.Display interface.
func (dsp *Display) Present(surface *framebuffer.Buffer) error {
	if int32(surface.Width) != dsp.width || int32(surface.Height) != dsp.height {
		err := dsp.resize(int32(surface.Width), int32(surface.Height))
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}

	pixels, pitch, err := dsp.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	stride := surface.Stride()
	for y := 0; y < surface.Height; y++ {
		copy(pixels[y*pitch:y*pitch+stride], surface.Pix[y*stride:(y+1)*stride])
	}
	dsp.texture.Unlock()

	err = dsp.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = dsp.renderer.Copy(dsp.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	if dsp.flash > 0 {
		dsp.flash--
		_ = dsp.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
		_ = dsp.renderer.SetDrawColor(255, 255, 255, 128)
		_ = dsp.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: dsp.width, H: dsp.height})
	}

	dsp.renderer.Present()

	return nil
}

// PollEvents implements the gui.Display interface.
func (dsp *Display) PollEvents() []gui.Event {
	var ev []gui.Event

	for sdlEvent := sdl.PollEvent(); sdlEvent != nil; sdlEvent = sdl.PollEvent() {
		switch sdlEvent := sdlEvent.(type) {
		case *sdl.QuitEvent:
			ev = append(ev, gui.EventQuit{})

		case *sdl.KeyboardEvent:
			// auto-repeated key presses are ignored
			if sdlEvent.Repeat != 0 {
				break
			}

			ev = append(ev, gui.EventKeyboard{
				Key:  strings.ToLower(sdl.GetKeyName(sdlEvent.Keysym.Sym)),
				Mod:  keyMod(),
				Down: sdlEvent.Type == sdl.KEYDOWN,
			})
		}
	}

	return ev
}

// keyMod converts the current SDL modifier state
func keyMod() gui.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return gui.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return gui.KeyModCtrl
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return gui.KeyModAlt
	}
	return gui.KeyModNone
}

// Notify implements the notifications.Notify interface.
func (dsp *Display) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyScreenshot:
		dsp.flash = flashFrames
	}
	return nil
}

// Destroy implements the gui.Display interface.
func (dsp *Display) Destroy() error {
	if dsp.texture != nil {
		_ = dsp.texture.Destroy()
		dsp.texture = nil
	}
	if dsp.renderer != nil {
		_ = dsp.renderer.Destroy()
		dsp.renderer = nil
	}
	if dsp.window != nil {
		err := dsp.window.Destroy()
		dsp.window = nil
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}
	sdl.Quit()
	return nil
}
