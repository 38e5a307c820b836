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

package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/framebuffer"
)

// Histogram is a bar chart of a fixed number of bins. Bars are drawn from
// the bottom of the target buffer.
type Histogram struct {
	bins []float64

	// the largest peak seen by Draw() when the scale is automatic. never
	// decreases
	peak float64

	// colour of the bars
	Colour color.RGBA
}

// NewHistogram creates a histogram with count bins.
func NewHistogram(count int) (*Histogram, error) {
	if count < 1 {
		return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("overlay: histogram must have at least one bin (%d)", count))
	}
	return &Histogram{
		bins:   make([]float64, count),
		Colour: color.RGBA{G: 0xff, A: 0xff},
	}, nil
}

// Len returns the number of bins.
func (h *Histogram) Len() int {
	return len(h.bins)
}

// Bin returns the value of the bin. Out of range bins are zero.
func (h *Histogram) Bin(i int) float64 {
	if i < 0 || i >= len(h.bins) {
		return 0
	}
	return h.bins[i]
}

// Accumulate adds the value to the bin.
func (h *Histogram) Accumulate(i int, v float64) error {
	if i < 0 || i >= len(h.bins) {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("overlay: histogram bin must be in the range 0 to %d (%d)", len(h.bins)-1, i))
	}
	h.bins[i] += v
	return nil
}

// Clear all bins. The remembered scale is not affected.
func (h *Histogram) Clear() {
	clear(h.bins)
}

// Scale returns the largest peak seen by automatically scaled calls to Draw().
func (h *Histogram) Scale() float64 {
	return h.peak
}

// Draw the bins as bars. A bar with the value of peak fills the height of
// the target. If peak is zero or less the scale is chosen automatically; the
// automatic scale never gets smaller.
func (h *Histogram) Draw(target *framebuffer.Buffer, peak float64) error {
	if target.Width < len(h.bins) || target.Height < 1 {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("overlay: target too small for %d bins (%dx%d)", len(h.bins), target.Width, target.Height))
	}

	if peak <= 0 {
		for _, v := range h.bins {
			h.peak = math.Max(h.peak, v)
		}
		peak = h.peak
	}

	if peak <= 0 {
		return nil
	}

	w := target.Width / len(h.bins)
	for i, v := range h.bins {
		if v <= 0 {
			continue
		}
		ht := int(math.Round(v / peak * float64(target.Height)))
		ht = min(ht, target.Height)
		target.FillRect(image.Rect(w*i, target.Height-ht, w*(i+1), target.Height), h.Colour)
	}

	return nil
}
