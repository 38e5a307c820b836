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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/ppm"
)

// Screenshot saves the most recently composed surface to the first free file
// called shot<N>.ppm in the screenshot directory. Existing files are never
// overwritten. The name of the new file is returned.
func (c *Compositor) Screenshot() (string, error) {
	dir := c.Prefs.ScreenshotDir.String()
	attempts := c.Prefs.ScreenshotAttempts.Get().(int)

	for i := 0; i < attempts; i++ {
		fn := filepath.Join(dir, fmt.Sprintf("shot%d.ppm", i))

		f, err := os.OpenFile(fn, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o664)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return "", curated.Errorf(curated.IOError, err)
		}

		err = ppm.Encode(f, c.surface)
		if err != nil {
			_ = f.Close()
			return "", curated.Errorf(curated.IOError, err)
		}

		err = f.Close()
		if err != nil {
			return "", curated.Errorf(curated.IOError, err)
		}

		return fn, nil
	}

	return "", curated.Errorf(curated.IOError, fmt.Sprintf("no free screenshot filename after %d attempts", attempts))
}
