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

// Package digest creates fingerprints of composed surfaces. Fingerprints of
// successive frames are chained so the final hash of a run depends on every
// frame of the run and on the order of the frames.
//
// Used by the DIGEST mode and by tests to show that evaluating the same
// input through the same graph always gives the same result.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/framegrid/framegrid/framebuffer"
)

// Digest implementations create a fingerprint of their input.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Surface is a chained digest of frame buffers.
type Surface struct {
	digest [sha1.Size]byte
	frames int

	// reused between frames. the head of the slice is the digest of the
	// previous frame
	data []byte
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface() *Surface {
	return &Surface{}
}

// Add a frame to the digest.
func (dig *Surface) Add(buf *framebuffer.Buffer) {
	l := len(dig.digest) + len(buf.Pix)
	if cap(dig.data) < l {
		dig.data = make([]byte, l)
	}
	dig.data = dig.data[:l]

	n := copy(dig.data, dig.digest[:])
	copy(dig.data[n:], buf.Pix)

	dig.digest = sha1.Sum(dig.data)
	dig.frames++
}

// Frames returns the number of frames added since the digest was reset.
func (dig *Surface) Frames() int {
	return dig.frames
}

// Hash implements the Digest interface.
func (dig *Surface) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Surface) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Buffer returns the fingerprint of a single frame buffer.
func Buffer(buf *framebuffer.Buffer) string {
	return fmt.Sprintf("%x", sha1.Sum(buf.Pix))
}
