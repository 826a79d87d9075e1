// Package rows defines the flat case row most list shapes converge on for
// summary and tabular output, plus the grouping and ordering rules shared
// across shapes: stable grouping by key, chronological-ish group ordering,
// and the rule that an unallocated group always sorts last.
package rows

import (
	"sort"
	"strings"
)

// Field is one labelled value within a row. Field order within a row is
// insertion order and becomes display order.
type Field struct {
	Label string
	Value string
}

// Row is one normalized case row: an ordered field list, optionally tagged
// with the group key it belongs to.
type Row struct {
	GroupKey string
	fields   []Field
}

// Add appends a field to the row, preserving insertion order. Values are
// stored as supplied; converters default absent source fields to "".
func (r *Row) Add(label, value string) *Row {
	r.fields = append(r.fields, Field{Label: label, Value: value})
	return r
}

// Fields returns the row's fields in insertion order.
func (r *Row) Fields() []Field {
	return r.fields
}

// Group is an ordered set of rows sharing one group key. An empty key means
// the rows are ungrouped and render standalone.
type Group struct {
	Key  string
	Rows []Row
}

// Collect groups rows by their group key, preserving first-seen key order
// and original row order within each group. Rows with an empty key collapse
// into a single unkeyed group.
func Collect(rs []Row) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, row := range rs {
		pos, ok := index[row.GroupKey]
		if !ok {
			pos = len(groups)
			index[row.GroupKey] = pos
			groups = append(groups, Group{Key: row.GroupKey})
		}
		groups[pos].Rows = append(groups[pos].Rows, row)
	}
	return groups
}

// unallocatedKeyMarker mirrors the room marker phrase; group keys derived
// from unallocated rooms carry it through.
const unallocatedKeyMarker = "to be allocated"

// UnallocatedKey reports whether a group key names the unallocated section.
func UnallocatedKey(key string) bool {
	return strings.Contains(strings.ToLower(key), unallocatedKeyMarker)
}

// SortGroups orders groups with the supplied comparison, keeping the sort
// stable so traversal order survives ties, and forcing any unallocated
// group after every other group regardless of its literal key.
func SortGroups(groups []Group, less func(a, b string) bool) {
	sort.SliceStable(groups, func(i, j int) bool {
		ua, ub := UnallocatedKey(groups[i].Key), UnallocatedKey(groups[j].Key)
		if ua != ub {
			return ub
		}
		if less == nil {
			return false
		}
		return less(groups[i].Key, groups[j].Key)
	})
}

// SortGroupsByKey orders groups by ascending key, unallocated last. Shapes
// that key groups by an ISO date string get chronological order for free.
func SortGroupsByKey(groups []Group) {
	SortGroups(groups, func(a, b string) bool { return a < b })
}
