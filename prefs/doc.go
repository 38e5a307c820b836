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

// Package prefs holds the typed preference values used by framegrid. Each
// type (Bool, Int, Float, String) stores its value atomically and so can be
// read from any goroutine.
//
// Hook functions can be attached to a value with SetHookPre() and
// SetHookPost(). A pre hook that returns an error prevents the new value from
// being stored, which makes it the natural place to validate a value.
//
// Preferences can be named and grouped in a Dictionary. Values in a
// Dictionary can be set from a command line preferences string, which is a
// series of key/value pairs:
//
//	"key::value; key::value"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack() and then consumed by Dictionary.ApplyCommandLine().
package prefs
