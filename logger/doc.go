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

// Package logger is the central log for framegrid. Entries are made up of a
// tag and a detail. The tag names the part of the program making the entry
// and the detail is the information being logged:
//
//	logger.Log(logger.Allow, "compositor", "screenshot saved to shot0.ppm")
//
// Adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// The Permission argument allows the caller to decide whether a log entry
// should be made at all. logger.Allow is the Permission to use when the entry
// should always be made.
//
// The central log can be echoed to an io.Writer as entries are made with the
// SetEcho() function.
package logger
