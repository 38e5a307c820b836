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

// Package filters is the library of transforms that can be placed in a
// filtergraph slot. Transforms are found by name with Lookup().
//
// Every transform writes every pixel of its destination buffer and the
// alpha channel of the destination is always opaque. Transforms that need
// to remember something between frames keep it in the slot's State and
// never in package level variables.
package filters
