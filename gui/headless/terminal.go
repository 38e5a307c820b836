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

package headless

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal is the keyboard input for the headless display.
type terminal struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// newTerminal puts the input into raw mode. reads from a terminal in this
// mode return immediately, whether there is input or not
func newTerminal(input *os.File) (*terminal, error) {
	t := &terminal{input: input}

	// fails if input is not a terminal
	err := termios.Tcgetattr(input.Fd(), &t.canAttr)
	if err != nil {
		return nil, err
	}

	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)

	// keep output processing so that log output is still readable
	t.rawAttr.Oflag = t.canAttr.Oflag

	t.rawAttr.Cc[unix.VMIN] = 0
	t.rawAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(input.Fd(), termios.TCSANOW, &t.rawAttr)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// read whatever is waiting. returns zero if there is nothing
func (t *terminal) read(b []byte) int {
	n, err := t.input.Read(b)
	if err != nil {
		return 0
	}
	return n
}

// restore the terminal to canonical mode
func (t *terminal) restore() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr)
}
