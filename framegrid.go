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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/framegrid/framegrid/compositor"
	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/digest"
	"github.com/framegrid/framegrid/filters"
	"github.com/framegrid/framegrid/framesource"
	"github.com/framegrid/framegrid/framesource/staticimage"
	"github.com/framegrid/framegrid/framesource/v4l"
	"github.com/framegrid/framegrid/gui"
	"github.com/framegrid/framegrid/gui/headless"
	"github.com/framegrid/framegrid/gui/sdl"
	"github.com/framegrid/framegrid/logger"
	"github.com/framegrid/framegrid/modalflag"
	"github.com/framegrid/framegrid/overlay"
	"github.com/framegrid/framegrid/performance"
	"github.com/framegrid/framegrid/prefs"
	"github.com/framegrid/framegrid/statsview"
	"github.com/framegrid/framegrid/version"
)

// the exit status for any error
const exitError = 10

// SDL must be used from the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "DIGEST")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(exitError)
	}

	if *showVersion {
		ver, rev, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, ver, rev)
		return
	}

	err = compose(md)
	if err != nil {
		reportError(os.Stderr, md, err)
		os.Exit(exitError)
	}
}

// reportError writes the error and the context in which it happened
func reportError(w io.Writer, md *modalflag.Modes, err error) {
	fmt.Fprintf(w, "* error in %s mode: %v\n", md, err)
	for _, b := range curated.Backtrace(err) {
		fmt.Fprintf(w, "  while %s\n", b)
	}
}

// compose handles the RUN, HEADLESS and DIGEST modes. the modes differ only in
// the display that is used
func compose(md *modalflag.Modes) error {
	mode := md.Mode()

	md.NewMode()

	device := md.AddString("device", "/dev/video0", "V4L2 capture device")
	imagePath := md.AddString("image", "", "P6 image file to use instead of a capture device")
	width := md.AddInt("width", 320, "requested frame width")
	height := md.AddInt("height", 240, "requested frame height")
	depth := md.AddInt("depth", 32, "requested bits per pixel: 16, 24 or 32")
	slots := md.AddInt("slots", 0, "number of slots in the graph (0 to fit the filter list)")
	filterList := md.AddString("filters", defaultFilters, "comma separated list of filters. name[@source]")
	fontPath := md.AddString("font", "", fmt.Sprintf("TrueType font for text overlays (%q for the built-in Go font)", overlay.GoFont))
	seed := md.AddInt("seed", 0, "seed for filters with random elements (0 to seed from the clock)")
	prefsArg := md.AddString("prefs", "", "preferences. key::value; key::value")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, trace, all (comma separated)")
	log := md.AddBool("log", false, "echo log to stderr")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	var frames *int
	switch mode {
	case "HEADLESS":
		frames = md.AddInt("frames", 0, "number of frames to run for (0 for no limit)")
	case "DIGEST":
		frames = md.AddInt("frames", 60, "number of frames to digest")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		err = statsview.Launch(md.Output)
		if err != nil {
			return err
		}
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	decls, err := parseFilterList(*filterList)
	if err != nil {
		return err
	}

	numSlots := *slots
	if numSlots == 0 {
		numSlots = len(decls) + 1
	}

	src, err := openSource(*device, *imagePath)
	if err != nil {
		return err
	}

	request := framesource.Params{
		Width:  *width,
		Height: *height,
		Depth:  *depth,
	}

	// ownership of the source passes to the compositor
	c, err := compositor.NewCompositor(src, request, numSlots)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Destroy(); err != nil {
			logger.Log(logger.Allow, "framegrid", err)
		}
	}()

	prefs.PushCommandLineStack(*prefsArg)
	err = c.Prefs.ApplyCommandLine()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "framegrid", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	opts := filters.Options{
		Font: *fontPath,
		Seed: int64(*seed),
	}

	// the digest of a run must not depend on timing or on the clock
	if mode == "DIGEST" {
		_ = c.Prefs.FPSOverlay.Set(false)
		_ = c.Prefs.TargetInterval.Set(0)
		if opts.Seed == 0 {
			opts.Seed = 1
		}
	}

	err = buildGraph(c.Graph(), decls, opts)
	if err != nil {
		return err
	}

	if *fontPath != "" {
		txt, err := overlay.LoadText(*fontPath, filters.DefaultFontSize)
		if err != nil {
			return err
		}
		c.SetFPSText(txt)
	}

	var dsp gui.Display
	var dig *digest.Surface

	switch mode {
	case "RUN":
		dsp, err = sdl.NewDisplay(c.SurfaceSize())
	case "HEADLESS":
		dsp, err = headless.NewDisplay(os.Stdin, *frames, nil)
	case "DIGEST":
		dig = digest.NewSurface()
		dsp, err = headless.NewDisplay(nil, *frames, dig)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := dsp.Destroy(); err != nil {
			logger.Log(logger.Allow, "framegrid", err)
		}
	}()

	c.AttachDisplay(newInterruptible(dsp))

	logger.Logf(logger.Allow, "framegrid", "%s mode: %s", mode, c)

	err = performance.RunProfiler(prof, version.ApplicationName, c.Run)
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "%s\n", dig.Hash())
	}

	return nil
}

// openSource opens the static image if a path is given and the capture
// device otherwise
func openSource(device string, imagePath string) (framesource.Source, error) {
	if imagePath != "" {
		img, err := staticimage.NewImage(imagePath)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	return v4l.Open(device)
}

// interruptible adds a quit event to the events of the display when the
// process is interrupted
type interruptible struct {
	gui.Display
	sig chan os.Signal
}

func newInterruptible(dsp gui.Display) *interruptible {
	it := &interruptible{
		Display: dsp,
		sig:     make(chan os.Signal, 1),
	}
	signal.Notify(it.sig, os.Interrupt)
	return it
}

// PollEvents implements the gui.Display interface.
func (it *interruptible) PollEvents() []gui.Event {
	ev := it.Display.PollEvents()
	select {
	case <-it.sig:
		ev = append(ev, gui.EventQuit{})
	default:
	}
	return ev
}
