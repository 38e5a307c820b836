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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}

	// descriptions of the operations in progress when the error was returned.
	// the first entry is the innermost operation
	context []string
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". This is because we use the pattern string
// in the Is() and Has() functions where 'pattern' seems to be more descriptive
// name.
func Errorf(pattern string, values ...interface{}) error {
	// note that we're not actually formatting the error here, despite the
	// function name. we instead only store the arguments. formatting takes
	// place in the Error() function
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent error messsage parts in the error message chains. It
// doesn't affect letter-case or white space.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Unwrap returns the first error in the list of values, if there is one.
// Allows curated errors to be used with errors.Is() and errors.As() from the
// standard library.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// Context adds a description of the operation in progress to the error. If
// the error is not a curated error it is wrapped inside one first. The
// original error is not modified.
//
// Returns nil if err is nil so that the function can be used in return
// statements without an additional test.
func Context(err error, description string, values ...interface{}) error {
	if err == nil {
		return nil
	}

	er, ok := err.(curated)
	if !ok {
		er = curated{
			pattern: "%v",
			values:  []interface{}{err},
		}
	}

	// copy context so that errors sharing a backing array do not see each
	// other's descriptions
	ctx := make([]string, len(er.context), len(er.context)+1)
	copy(ctx, er.context)
	er.context = append(ctx, fmt.Sprintf(description, values...))

	return er
}

// Backtrace returns the context descriptions of the error and of any curated
// errors wrapped inside it. The innermost operation is first in the list.
//
// Returns nil for uncurated errors.
func Backtrace(err error) []string {
	er, ok := err.(curated)
	if !ok {
		return nil
	}

	var bt []string
	for _, v := range er.values {
		if e, ok := v.(curated); ok {
			bt = append(bt, Backtrace(e)...)
		}
	}

	return append(bt, er.context...)
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(curated); ok {
		return true
	}

	return false
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain. Errors wrapped with the %w verb of fmt.Errorf() are searched
// too.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		e, ok := v.(error)
		for ok && e != nil {
			if IsAny(e) {
				if Has(e, pattern) {
					return true
				}
				break // for loop
			}
			e = errors.Unwrap(e)
		}
	}

	return false
}
