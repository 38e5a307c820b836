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

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/prefs"
)

// Preferences for the compositor. Values can be changed from the command
// line with the prefs command line stack.
type Preferences struct {
	dct *prefs.Dictionary

	// the preferred duration of a tick in milliseconds. zero means the
	// compositor runs as quickly as the source allows
	TargetInterval prefs.Int

	// the number of file names to try before giving up on a screenshot
	ScreenshotAttempts prefs.Int

	// directory in which screenshots are saved
	ScreenshotDir prefs.String

	// show the measured tick rate in the top-left corner of the surface
	FPSOverlay prefs.Bool
}

func (p *Preferences) String() string {
	return p.dct.String()
}

// keys used in the prefs dictionary and on the command line.
const (
	keyTargetInterval     = "compositor.targetinterval"
	keyScreenshotAttempts = "compositor.screenshot.attempts"
	keyScreenshotDir      = "compositor.screenshot.dir"
	keyFPSOverlay         = "compositor.fpsoverlay"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		dct: prefs.NewDictionary(),
	}

	p.TargetInterval.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(curated.ArgumentError, fmt.Sprintf("target interval cannot be negative (%d)", v.(int)))
		}
		return nil
	})

	p.ScreenshotAttempts.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(curated.ArgumentError, fmt.Sprintf("screenshot attempts must be at least one (%d)", v.(int)))
		}
		return nil
	})

	p.SetDefaults()

	var err error

	err = p.dct.Add(keyTargetInterval, &p.TargetInterval)
	if err != nil {
		return nil, err
	}
	err = p.dct.Add(keyScreenshotAttempts, &p.ScreenshotAttempts)
	if err != nil {
		return nil, err
	}
	err = p.dct.Add(keyScreenshotDir, &p.ScreenshotDir)
	if err != nil {
		return nil, err
	}
	err = p.dct.Add(keyFPSOverlay, &p.FPSOverlay)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.TargetInterval.Set(33)
	_ = p.ScreenshotAttempts.Set(1000)
	_ = p.ScreenshotDir.Set(".")
	_ = p.FPSOverlay.Set(true)
}

// ApplyCommandLine sets any preference that has been specified on the
// command line.
func (p *Preferences) ApplyCommandLine() error {
	return p.dct.ApplyCommandLine()
}
