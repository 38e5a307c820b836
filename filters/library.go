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

package filters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/filtergraph"
	"github.com/framegrid/framegrid/overlay"
)

// Options change how some transforms are created by Lookup().
type Options struct {
	// font used by transforms that draw text. the built-in face is used if
	// the string is empty
	Font     string
	FontSize float64

	// seed for transforms with random elements. zero means the transform
	// seeds itself from the clock
	Seed int64
}

// DefaultFontSize is used when Options.FontSize is zero.
const DefaultFontSize = 20

// stateless transforms
var library = map[string]filtergraph.Transform{
	"copy":            Copy,
	"red":             Red,
	"green":           Green,
	"blue":            Blue,
	"replace_blue":    ReplaceBlue,
	"invert":          Invert,
	"cyan":            Cyan,
	"magenta":         Magenta,
	"yellow":          Yellow,
	"gray":            Gray,
	"edge":            Edge,
	"blur":            Blur,
	"linear_contrast": LinearContrast,
	"rgb_hist":        RGBHist,
}

// transforms that are created with Options
var constructed = map[string]func(Options) filtergraph.Transform{
	"frame_counter": func(opts Options) filtergraph.Transform {
		return FrameCounter(func() (*overlay.Text, error) {
			if opts.Font == "" {
				return overlay.NewBasicText(), nil
			}
			size := opts.FontSize
			if size <= 0 {
				size = DefaultFontSize
			}
			return overlay.LoadText(opts.Font, size)
		})
	},
	"colorize": func(opts Options) filtergraph.Transform {
		return Colorize(opts.Seed)
	},
}

// Lookup returns the named transform. Names are case insensitive.
func Lookup(name string, opts Options) (filtergraph.Transform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := library[name]; ok {
		return f, nil
	}
	if c, ok := constructed[name]; ok {
		return c(opts), nil
	}
	return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("filters: unknown filter (%s)", name))
}

// Names returns the name of every transform in sorted order.
func Names() []string {
	names := make([]string, 0, len(library)+len(constructed))
	for n := range library {
		names = append(names, n)
	}
	for n := range constructed {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
