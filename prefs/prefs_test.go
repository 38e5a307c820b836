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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/framegrid/framegrid/prefs"
	"github.com/framegrid/framegrid/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("no"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(33))
	test.ExpectEquality(t, v.Get().(int), 33)
	test.ExpectSuccess(t, v.Set("40"))
	test.ExpectEquality(t, v.Get().(int), 40)
	test.ExpectFailure(t, v.Set("forty"))
	test.ExpectEquality(t, v.Get().(int), 40)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2.000")
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("screenshots"))
	test.ExpectEquality(t, v.String(), "screenshots")
	v.SetMaxLen(6)
	test.ExpectEquality(t, v.String(), "screen")
	test.ExpectSuccess(t, v.Set("abcdefghij"))
	test.ExpectEquality(t, v.String(), "abcdef")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 {
			return errors.New("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// vetoed values are not stored and the post hook is not called
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestDictionary(t *testing.T) {
	var interval prefs.Int
	var overlay prefs.Bool
	var dir prefs.String

	dct := prefs.NewDictionary()
	test.ExpectSuccess(t, dct.Add("interval", &interval))
	test.ExpectSuccess(t, dct.Add("overlay", &overlay))
	test.ExpectSuccess(t, dct.Add("dir", &dir))
	test.ExpectFailure(t, dct.Add("dir", &dir))
	test.ExpectFailure(t, dct.Add("bad::key", &dir))

	test.ExpectSuccess(t, dct.Set("interval", 33))
	test.ExpectFailure(t, dct.Set("missing", 1))

	_, ok := dct.Get("missing")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("interval::40; overlay::true; unknown::1")
	test.ExpectSuccess(t, dct.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	v, ok := dct.Get("interval")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(int), 40)
	test.ExpectEquality(t, overlay.Get().(bool), true)
	test.ExpectEquality(t, dct.String(), "dir::; interval::40; overlay::true")

	// bad values in the command line are reported
	prefs.PushCommandLineStack("interval::fast")
	test.ExpectFailure(t, dct.ApplyCommandLine())
	prefs.PopCommandLineStack()
}
