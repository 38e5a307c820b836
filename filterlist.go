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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrid/framegrid/curated"
	"github.com/framegrid/framegrid/filters"
	"github.com/framegrid/framegrid/filtergraph"
)

// the graph used when no filter list is given on the command line. every
// filter reads from the source
const defaultFilters = "invert,replace_blue,red,green,blue,cyan,magenta,yellow"

// filterDecl is one entry in the filter list. the slot of the filter is its
// position in the list plus one
type filterDecl struct {
	name   string
	source int
}

// parseFilterList parses a comma separated list of filters. each filter is a
// name optionally followed by @ and the slot it reads from. the source slot
// is zero if it is not specified. an empty entry leaves the slot empty
func parseFilterList(list string) ([]filterDecl, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var decls []filterDecl

	for i, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			decls = append(decls, filterDecl{})
			continue
		}

		name, src, found := strings.Cut(s, "@")
		d := filterDecl{name: strings.TrimSpace(name)}
		if d.name == "" {
			return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("filter %d has no name", i+1))
		}

		if found {
			var err error
			d.source, err = strconv.Atoi(strings.TrimSpace(src))
			if err != nil {
				return nil, curated.Errorf(curated.ArgumentError, fmt.Sprintf("filter %d (%s) has an illegal source slot: %s", i+1, d.name, src))
			}
		}

		decls = append(decls, d)
	}

	return decls, nil
}

// buildGraph adds the declared filters to the graph. the graph must have at
// least one more slot than there are declarations
func buildGraph(g *filtergraph.Graph, decls []filterDecl, opts filters.Options) error {
	if len(decls) >= g.NumSlots() {
		return curated.Errorf(curated.ArgumentError, fmt.Sprintf("%d filters do not fit in %d slots", len(decls), g.NumSlots()))
	}

	for i, d := range decls {
		if d.name == "" {
			continue
		}

		tr, err := filters.Lookup(d.name, opts)
		if err != nil {
			return err
		}

		err = g.AddFilter(d.name, tr, i+1, d.source)
		if err != nil {
			return curated.Context(err, "adding %s to slot %d", d.name, i+1)
		}
	}

	return nil
}
