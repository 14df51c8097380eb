package model

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the display order of a List. It never changes the list.
type SortMode string

const (
	SortInput       SortMode = "input"
	SortDescription SortMode = "description"
	SortPacked      SortMode = "packed"
)

// SortModes lists every mode in cycling order.
var SortModes = []SortMode{SortInput, SortDescription, SortPacked}

// ParseSortMode accepts a mode name, case-insensitively.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q (want input|description|packed)", s)
}

// Next returns the mode after m, wrapping around.
func (m SortMode) Next() SortMode {
	i := slices.Index(SortModes, m)
	return SortModes[(i+1)%len(SortModes)]
}

// Label is the human-readable name shown in the list footer.
func (m SortMode) Label() string {
	switch m {
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}

// Sorter orders lists for display. Descriptions are compared with the
// collation rules of its language.
//
// A Sorter is not safe for concurrent use.
type Sorter struct {
	col *collate.Collator
}

// NewSorter returns a Sorter collating for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Sorted returns the items of l in mode order. The result is always a copy;
// l is left as it was. Ties keep their input order.
func (s *Sorter) Sorted(l List, mode SortMode) List {
	out := make(List, len(l))
	copy(out, l)
	switch mode {
	case SortDescription:
		slices.SortStableFunc(out, func(a, b Item) int {
			return s.col.CompareString(a.Description, b.Description)
		})
	case SortPacked:
		slices.SortStableFunc(out, func(a, b Item) int {
			return packedRank(a) - packedRank(b)
		})
	}
	return out
}

func packedRank(it Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
