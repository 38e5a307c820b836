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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Dictionary associates a key with a preference value.
type Dictionary struct {
	entries map[string]pref
}

// NewDictionary is the preferred method of initialisation for the Dictionary
// type.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the dictionary. Keys must be unique and must not
// contain the command line separators.
func (dct *Dictionary) Add(key string, p pref) error {
	if strings.Contains(key, "::") || strings.Contains(key, ";") {
		return fmt.Errorf("prefs: illegal key: %s", key)
	}
	if _, ok := dct.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key: %s", key)
	}
	dct.entries[key] = p
	return nil
}

// Get returns the raw value of the preference with the key. The boolean
// return value is false if the key is not in the dictionary.
func (dct *Dictionary) Get(key string) (Value, bool) {
	p, ok := dct.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Set the value of the preference with the key.
func (dct *Dictionary) Set(key string, v Value) error {
	p, ok := dct.entries[key]
	if !ok {
		return fmt.Errorf("prefs: unknown key: %s", key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	return nil
}

// ApplyCommandLine sets every preference in the dictionary that has a value
// in the top group of the command line stack. Values used are removed from
// the group.
func (dct *Dictionary) ApplyCommandLine() error {
	for _, key := range dct.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := dct.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (dct *Dictionary) keys() []string {
	keys := make([]string, 0, len(dct.entries))
	for k := range dct.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the dictionary in the same format as a command line
// preferences string, with keys in sorted order.
func (dct *Dictionary) String() string {
	s := strings.Builder{}
	for _, key := range dct.keys() {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, dct.entries[key].String()))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
